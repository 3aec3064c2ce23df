package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"okved_game/internal/domain/service/game"
	"okved_game/internal/server"
	"okved_game/pkg/errcodes"
	"okved_game/pkg/rest"
	"okved_game/pkg/tests"
)

func newTestServer(t *testing.T, catalog game.StaticCatalog) tests.APIClient {
	t.Helper()

	srv := server.NewServer(server.NewGameServer(game.NewSession(catalog)))

	router := chi.NewRouter()
	srv.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	return tests.NewAPIClient(httpServer.URL, httpServer.Client())
}

func TestPostV1Game(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	catalog := game.StaticCatalog{
		{Code: "4511", Name: "Торговля автомобилями"},
		{Code: "89", Name: "Прочие услуги"},
	}

	t.Run("success", func(*testing.T) {
		client := newTestServer(t, catalog)

		var result rest.MatchResult

		resp, err := client.Post(ctx, "/v1/game", nil, rest.PlayRequest{Phone: "8 (912) 345-67-89"}, &result, nil)
		rq.NoError(err)
		rq.Equal(http.StatusOK, resp.StatusCode)
		rq.Equal(rest.MatchResult{
			NormalizedPhone: "+79123456789",
			OkvedCode:       "89",
			OkvedName:       "Прочие услуги",
			MatchLength:     2,
			Fallback:        false,
		}, result)
	})

	t.Run("invalid phone", func(*testing.T) {
		client := newTestServer(t, catalog)

		var restErr rest.Error

		resp, err := client.Post(ctx, "/v1/game", nil, rest.PlayRequest{Phone: "123"}, nil, &restErr)
		rq.NoError(err)
		rq.Equal(http.StatusBadRequest, resp.StatusCode)
		rq.Equal(rest.ErrorCode(errcodes.InvalidPhoneFormat), restErr.Code)
	})

	t.Run("missing phone field", func(*testing.T) {
		client := newTestServer(t, catalog)

		var restErr rest.Error

		resp, err := client.PostJSON(ctx, "/v1/game", nil, `{}`, nil, &restErr)
		rq.NoError(err)
		rq.Equal(http.StatusBadRequest, resp.StatusCode)
		rq.Equal(rest.ErrorCode(errcodes.ValidationError), restErr.Code)
	})

	t.Run("empty catalog", func(*testing.T) {
		client := newTestServer(t, game.StaticCatalog{})

		var restErr rest.Error

		resp, err := client.Post(ctx, "/v1/game", nil, rest.PlayRequest{Phone: "79123456789"}, nil, &restErr)
		rq.NoError(err)
		rq.Equal(http.StatusServiceUnavailable, resp.StatusCode)
		rq.Equal(rest.ErrorCode(errcodes.EmptyCatalog), restErr.Code)
	})
}
