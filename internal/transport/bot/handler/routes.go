package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"okved_game/internal/transport/bot/middleware"
)

func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64) {
	// Команда /start
	bh.HandleMessage(h.OnStart, th.CommandEqual("start"))

	// Команда /status
	bh.HandleMessage(h.OnStatus, th.CommandEqual("status"))

	// Команда /catalog
	bh.HandleMessage(h.OnCatalog, th.CommandEqual("catalog"))

	// Служебная команда /refresh доступна только админу. Группа сужена до
	// самой команды, чтобы миддлварь не глотала чужие сообщения.
	adminGroup := bh.Group(th.CommandEqual("refresh"))
	adminGroup.Use(middleware.AdminOnly(adminID))
	adminGroup.HandleMessage(h.OnRefresh, th.CommandEqual("refresh"))

	// Любой другой текст считаем номером телефона и играем раунд.
	// Регистрируем последним, чтобы команды матчились раньше.
	bh.HandleMessage(h.OnPlay, th.AnyMessage())

	// Пагинация каталога
	cbGroup := bh.Group(th.AnyCallbackQuery())
	cbGroup.HandleCallbackQuery(h.OnCatalogCallback, th.CallbackDataPrefix("catalog_page"))
}
