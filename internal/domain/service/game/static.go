package game

import (
	"context"

	"okved_game/internal/domain/entity"
)

// StaticCatalog — репозиторий поверх заранее загруженного среза.
type StaticCatalog []entity.OkvedItem

func (c StaticCatalog) GetAll(context.Context) ([]entity.OkvedItem, error) {
	return c, nil
}
