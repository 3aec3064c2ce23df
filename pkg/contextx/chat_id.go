package contextx

import (
	"context"
	"fmt"
	"strconv"
)

// ChatID — идентификатор чата Telegram, из которого пришёл раунд игры.
type ChatID int64

type contextKeyChatID struct{}

func (c ChatID) String() string {
	return strconv.FormatInt(int64(c), 10)
}

func WithChatID(ctx context.Context, chatID ChatID) context.Context {
	return context.WithValue(ctx, contextKeyChatID{}, chatID)
}

func ChatIDFromContext(ctx context.Context) (ChatID, error) {
	chatID, ok := ctx.Value(contextKeyChatID{}).(ChatID)
	if !ok {
		return 0, fmt.Errorf("chat id: %w", ErrNoValue)
	}

	return chatID, nil
}
