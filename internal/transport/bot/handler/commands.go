package handler

import (
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"okved_game/internal/transport/bot/view"
	"okved_game/pkg/contextx"
	"okved_game/pkg/logx"
)

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, view.StartMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	refresherStatus := "🔴 выключено"
	if h.refresher != nil && h.refresher.IsRunning() {
		refresherStatus = "🟢 работает"
	}

	catalogSize := 0
	catalogStatus := "🟢 загружен"

	items, err := h.catalog.GetAll(ctx)
	if err != nil {
		catalogStatus = "🔴 недоступен"
	} else {
		catalogSize = len(items)
	}

	text := fmt.Sprintf(`📊 <b>Состояние игры</b>

	📚 <b>Справочник:</b> %s
	🔢 <b>Записей:</b> %d
	🔄 <b>Фоновое обновление:</b> %s
`,
		catalogStatus,
		catalogSize,
		refresherStatus,
	)

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) OnRefresh(ctx *th.Context, msg telego.Message) error {
	count, err := h.catalog.Refresh(ctx)
	if err != nil {
		return h.sendHTML(ctx, msg.Chat.ID, view.RefreshError)
	}

	return h.sendHTML(ctx, msg.Chat.ID, fmt.Sprintf(view.RefreshDoneTemplate, count))
}

// OnPlay — основной сценарий: любое сообщение трактуем как номер телефона.
func (h *Handler) OnPlay(ctx *th.Context, msg telego.Message) error {
	playCtx := contextx.WithChatID(ctx, contextx.ChatID(msg.Chat.ID))

	result := h.session.PlayRound(playCtx, msg.Text)

	logger(playCtx).Info("round played",
		logx.Stringer(logx.FieldChatID, contextx.ChatID(msg.Chat.ID)),
		slog.Bool("succeeded", result.Succeeded()),
	)

	if !result.Succeeded() {
		text := fmt.Sprintf(view.ErrorTemplate, result.Err.Code.String(), result.Err.Message)
		return h.sendHTML(ctx, msg.Chat.ID, text)
	}

	match := result.Match

	text := fmt.Sprintf(
		view.MatchTemplate,
		match.Phone.String(),
		match.Item.Code,
		match.Item.Name,
		match.MatchLength,
	)
	if match.Fallback {
		text += view.FallbackNote
	}

	return h.sendHTML(ctx, msg.Chat.ID, text)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: "HTML",
	})
	return err
}
