package handler

import (
	"fmt"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"

	"okved_game/internal/domain/entity"
	"okved_game/internal/transport/bot/view"
)

const catalogPageSize = 10

func (h *Handler) OnCatalog(ctx *th.Context, msg telego.Message) error {
	items, err := h.catalog.GetAll(ctx)
	if err != nil || len(items) == 0 {
		return h.sendHTML(ctx, msg.Chat.ID, view.CatalogError)
	}

	totalPages := (len(items) + catalogPageSize - 1) / catalogPageSize

	_, err = ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:      telego.ChatID{ID: msg.Chat.ID},
		Text:        renderCatalogPage(items, 1, totalPages),
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: createPaginationKeyboard(1, totalPages),
	})
	return err
}

func (h *Handler) OnCatalogCallback(ctx *th.Context, query telego.CallbackQuery) error {
	// Формат данных: "catalog_page:<number>" — должен совпадать с генератором клавиатуры.
	var page int
	_, err := fmt.Sscanf(query.Data, "catalog_page:%d", &page)
	if err != nil || page < 1 {
		page = 1
	}

	items, err := h.catalog.GetAll(ctx)
	if err != nil {
		_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID).
			WithText("❌ Ошибка получения данных").WithShowAlert())
		return err
	}

	totalPages := (len(items) + catalogPageSize - 1) / catalogPageSize
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	_, err = ctx.Bot().EditMessageText(ctx, &telego.EditMessageTextParams{
		ChatID:      tu.ID(query.Message.GetChat().ID),
		MessageID:   query.Message.GetMessageID(),
		Text:        renderCatalogPage(items, page, totalPages),
		ParseMode:   telego.ModeHTML,
		ReplyMarkup: createPaginationKeyboard(page, totalPages),
	})
	// Telegram возвращает ошибку, если сообщение не изменилось (повторное
	// нажатие на ту же страницу) — её игнорируем.
	_ = err

	// Обязательно отвечаем на коллбэк, чтобы убрать часики.
	_ = ctx.Bot().AnswerCallbackQuery(ctx, tu.CallbackQuery(query.ID))

	return nil
}

func renderCatalogPage(items []entity.OkvedItem, page, totalPages int) string {
	start := (page - 1) * catalogPageSize
	end := start + catalogPageSize
	if end > len(items) {
		end = len(items)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(view.CatalogHeaderTemplate, page, totalPages))
	for _, item := range items[start:end] {
		sb.WriteString(fmt.Sprintf(view.CatalogItemTemplate, item.Code, item.Name))
	}
	return sb.String()
}

func createPaginationKeyboard(page, totalPages int) *telego.InlineKeyboardMarkup {
	var buttons []telego.InlineKeyboardButton

	if page > 1 {
		buttons = append(buttons, tu.InlineKeyboardButton("⬅️").
			WithCallbackData(fmt.Sprintf("catalog_page:%d", page-1)))
	}

	buttons = append(buttons, tu.InlineKeyboardButton(fmt.Sprintf("%d / %d", page, totalPages)).
		WithCallbackData("noop"))

	if page < totalPages {
		buttons = append(buttons, tu.InlineKeyboardButton("➡️").
			WithCallbackData(fmt.Sprintf("catalog_page:%d", page+1)))
	}

	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(buttons...),
	)
}
