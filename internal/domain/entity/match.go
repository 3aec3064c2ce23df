package entity

import "okved_game/internal/domain/value"

// MatchResult — результат одного раунда: какой код ОКВЭД выпал номеру и
// насколько длинным оказалось общее окончание.
type MatchResult struct {
	Phone       value.Phone
	Item        OkvedItem
	MatchLength int

	// Fallback выставлен, когда ни одна запись не совпала даже на одну
	// цифру и запись выбрана с нулевой длиной совпадения.
	Fallback bool
}
