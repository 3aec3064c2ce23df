package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"okved_game/pkg/logx"
)

// CatalogSource — то, что умеет перечитать справочник из первоисточника.
type CatalogSource interface {
	Refresh(ctx context.Context) (int, error)
}

// CatalogRefresher периодически перечитывает справочник ОКВЭД, чтобы
// долгоживущие транспорты (HTTP-сервер, бот) не работали вечно со старой
// копией. Ошибка обновления не фатальна: продолжаем жить на прошлой копии.
type CatalogRefresher struct {
	source   CatalogSource
	interval time.Duration

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewCatalogRefresher(source CatalogSource, interval time.Duration) *CatalogRefresher {
	return &CatalogRefresher{
		source:   source,
		interval: interval,
	}
}

func (w *CatalogRefresher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("catalog refresher is already running")
	}

	refreshCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(refreshCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(refreshCtx).Error("catalog refresher stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *CatalogRefresher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

// IsRunning возвращает текущий статус
func (w *CatalogRefresher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

func (w *CatalogRefresher) Run(ctx context.Context) error {
	if w.interval <= 0 {
		logger(ctx).Info("catalog refresher disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	logger(ctx).Info("catalog refresher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger(ctx).Info("catalog refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			w.refreshOnce(ctx)
		}
	}
}

func (w *CatalogRefresher) refreshOnce(ctx context.Context) {
	count, err := w.source.Refresh(ctx)
	if err != nil {
		logger(ctx).Error("catalog refresh failed", logx.Error(err))
		return
	}

	logger(ctx).Info("catalog refresh completed", slog.Int(logx.FieldCatalogSize, count))
}
