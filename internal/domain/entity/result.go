package entity

import "git.appkode.ru/pub/go/failure"

// ErrorInfo — машиночитаемый код ошибки плюс сообщение для пользователя.
type ErrorInfo struct {
	Code    failure.ErrorCode
	Message string
}

// GameResult — итог раунда: либо Match, либо Err, никогда оба сразу.
// Живёт один раунд и нигде не сохраняется.
type GameResult struct {
	Match *MatchResult
	Err   *ErrorInfo
}

func (r GameResult) Succeeded() bool {
	return r.Err == nil && r.Match != nil
}
