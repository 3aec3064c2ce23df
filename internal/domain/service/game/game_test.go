package game_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"okved_game/internal/domain"
	"okved_game/internal/domain/entity"
	"okved_game/internal/domain/service/game"
	"okved_game/pkg/errcodes"
)

type failingCatalog struct {
	err error
}

func (c failingCatalog) GetAll(context.Context) ([]entity.OkvedItem, error) {
	return nil, c.err
}

func TestSessionPlayRound(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	catalog := game.StaticCatalog{
		{Code: "4511", Name: "Торговля автомобилями"},
		{Code: "6201", Name: "Разработка ПО"},
		{Code: "89", Name: "Прочие услуги"},
	}

	t.Run("success", func(*testing.T) {
		session := game.NewSession(catalog)

		result := session.PlayRound(ctx, "8 (912) 345-67-89")
		rq.True(result.Succeeded())
		rq.Nil(result.Err)
		rq.Equal("+79123456789", result.Match.Phone.String())
		rq.Equal("89", result.Match.Item.Code)
		rq.Equal(2, result.Match.MatchLength)
		rq.False(result.Match.Fallback)
	})

	t.Run("invalid phone short-circuits", func(*testing.T) {
		session := game.NewSession(catalog)

		result := session.PlayRound(ctx, "123")
		rq.False(result.Succeeded())
		rq.Nil(result.Match)
		rq.Equal(errcodes.InvalidPhoneFormat, result.Err.Code)
		rq.NotEmpty(result.Err.Message)
	})

	t.Run("empty catalog", func(*testing.T) {
		session := game.NewSession(game.StaticCatalog{})

		result := session.PlayRound(ctx, "79123456789")
		rq.False(result.Succeeded())
		rq.Equal(errcodes.EmptyCatalog, result.Err.Code)
	})

	t.Run("fetch error propagated with its code", func(*testing.T) {
		repoErr := domain.NewError(errcodes.CatalogFetchError, "не удалось загрузить okved.json")
		session := game.NewSession(failingCatalog{err: repoErr})

		result := session.PlayRound(ctx, "79123456789")
		rq.False(result.Succeeded())
		rq.Equal(errcodes.CatalogFetchError, result.Err.Code)
		rq.Contains(result.Err.Message, "okved.json")
	})

	t.Run("plain fetch error gets stage code", func(*testing.T) {
		session := game.NewSession(failingCatalog{err: errors.New("connection refused")})

		result := session.PlayRound(ctx, "79123456789")
		rq.False(result.Succeeded())
		rq.Equal(errcodes.CatalogFetchError, result.Err.Code)
	})

	t.Run("rounds are independent", func(*testing.T) {
		session := game.NewSession(catalog)

		bad := session.PlayRound(ctx, "oops")
		rq.False(bad.Succeeded())

		good := session.PlayRound(ctx, "79123456789")
		rq.True(good.Succeeded())
	})
}
