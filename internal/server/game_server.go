package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"okved_game/internal/domain"
	"okved_game/internal/domain/entity"
	"okved_game/pkg/errcodes"
	"okved_game/pkg/httpx/reply"
	"okved_game/pkg/httpx/req"
	"okved_game/pkg/rest"
)

type gameService interface {
	PlayRound(ctx context.Context, rawInput string) entity.GameResult
}

type GameServer struct {
	gameService gameService
}

func NewGameServer(gameService gameService) GameServer {
	return GameServer{
		gameService: gameService,
	}
}

func (s GameServer) postV1Game(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PlayRequest

	if err := req.Read(r, &request); err != nil {
		observeRound(entity.GameResult{Err: &entity.ErrorInfo{Code: errcodes.ValidationError}})
		return fmt.Errorf("req.Read: %w", err)
	}

	result := s.gameService.PlayRound(ctx, request.Phone)
	observeRound(result)

	if !result.Succeeded() {
		return roundError(*result.Err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTMatchResult(*result.Match))

	return nil
}

// roundError переводит исход раунда в ошибку failure, чтобы reply.Error
// подобрал правильный HTTP-статус: кривой номер — вина клиента, проблемы
// со справочником — наши.
func roundError(errInfo entity.ErrorInfo) error {
	if errInfo.Code == errcodes.InvalidPhoneFormat {
		return failure.NewInvalidArgumentError(
			errInfo.Message,
			failure.WithCode(errInfo.Code),
			failure.WithDescription(errInfo.Message),
		)
	}

	return domain.NewError(errInfo.Code, errInfo.Message)
}
