package handler

import (
	"context"

	"okved_game/internal/domain/entity"
	"okved_game/internal/domain/service/game"
	"okved_game/internal/worker"
)

type catalogRepository interface {
	GetAll(ctx context.Context) ([]entity.OkvedItem, error)
	Refresh(ctx context.Context) (int, error)
}

type Handler struct {
	session   game.Session
	catalog   catalogRepository
	refresher *worker.CatalogRefresher
}

func New(session game.Session, catalog catalogRepository, refresher *worker.CatalogRefresher) *Handler {
	return &Handler{
		session:   session,
		catalog:   catalog,
		refresher: refresher,
	}
}
