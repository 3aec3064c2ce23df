package game

import (
	"context"
	"log/slog"

	"git.appkode.ru/pub/go/failure"

	"okved_game/internal/domain"
	"okved_game/internal/domain/entity"
	"okved_game/internal/domain/service/matcher"
	"okved_game/internal/domain/value"
	"okved_game/pkg/errcodes"
	"okved_game/pkg/logx"
)

// CatalogRepository поставляет справочник ОКВЭД. Реализация сама решает,
// откуда брать данные и как их кэшировать; сессия трактует результат как
// неизменяемый.
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]entity.OkvedItem, error)
}

// Session — фасад игры: нормализация номера, загрузка справочника, подбор
// кода. Состояния между раундами не хранит.
type Session struct {
	repo CatalogRepository
}

func NewSession(repo CatalogRepository) Session {
	return Session{repo: repo}
}

// PlayRound обрабатывает один раунд. Любая ошибка завершает только текущий
// раунд: наружу всегда уходит GameResult, не паника и не голый error.
func (s Session) PlayRound(ctx context.Context, rawInput string) entity.GameResult {
	phone, err := value.ParsePhone(rawInput)
	if err != nil {
		return failed(err, errcodes.InvalidPhoneFormat)
	}

	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return failed(err, errcodes.CatalogFetchError)
	}

	match, err := matcher.FindBestMatch(phone, items)
	if err != nil {
		return failed(err, errcodes.EmptyCatalog)
	}

	logger(ctx).Debug(
		"round played",
		slog.String(logx.FieldOkvedCode, match.Item.Code),
		slog.Int(logx.FieldMatchLength, match.MatchLength),
	)

	return entity.GameResult{Match: &match}
}

// failed сворачивает ошибку в GameResult. Код берётся из доменной ошибки,
// если он там есть, иначе используется код этапа, на котором раунд упал.
func failed(err error, defaultCode failure.ErrorCode) entity.GameResult {
	code, ok := domain.GetCode(err)
	if !ok {
		code = defaultCode
	}

	return entity.GameResult{
		Err: &entity.ErrorInfo{
			Code:    code,
			Message: err.Error(),
		},
	}
}
