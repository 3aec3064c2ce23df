package okved

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"okved_game/internal/config"
	"okved_game/internal/domain"
	"okved_game/internal/domain/entity"
	"okved_game/pkg/errcodes"
	"okved_game/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const catalogCacheKey = "okved-catalog"

// Repository загружает справочник ОКВЭД по HTTP и кэширует результат:
// при нулевом TTL справочник выкачивается один раз на процесс.
type Repository struct {
	url          string
	maxBodyBytes int64
	httpClient   *http.Client
	cache        *cache.Cache
	cacheTTL     time.Duration
}

func NewRepository(cfg config.Okved, httpClient *http.Client) *Repository {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &Repository{
		url:          cfg.URL,
		maxBodyBytes: cfg.MaxBodyBytes,
		httpClient:   httpClient,
		cache:        cache.New(ttl, time.Hour),
		cacheTTL:     ttl,
	}
}

// GetAll возвращает кэшированный справочник, загружая его при первом
// обращении или после истечения TTL.
func (r *Repository) GetAll(ctx context.Context) ([]entity.OkvedItem, error) {
	if cached, found := r.cache.Get(catalogCacheKey); found {
		if items, ok := cached.([]entity.OkvedItem); ok {
			return items, nil
		}
	}

	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.Set(catalogCacheKey, items, r.cacheTTL)

	return items, nil
}

// Refresh принудительно перечитывает справочник и атомарно подменяет кэш.
// Возвращает число загруженных записей.
func (r *Repository) Refresh(ctx context.Context) (int, error) {
	items, err := r.load(ctx)
	if err != nil {
		return 0, err
	}

	r.cache.Set(catalogCacheKey, items, r.cacheTTL)

	logger(ctx).Info("catalog refreshed", slog.Int(logx.FieldCatalogSize, len(items)))

	return len(items), nil
}

func (r *Repository) load(ctx context.Context) ([]entity.OkvedItem, error) {
	body, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}

	var schemas []itemSchema
	if err := json.Unmarshal(body, &schemas); err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidCatalogData, "некорректный JSON в okved.json")
	}

	items := lo.FilterMap(schemas, func(s itemSchema, _ int) (entity.OkvedItem, bool) {
		return s.toDomain()
	})

	if len(items) == 0 {
		return nil, domain.NewError(errcodes.InvalidCatalogData, "не найдено ни одной корректной записи ОКВЭД")
	}

	return items, nil
}

func (r *Repository) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, http.NoBody)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.CatalogFetchError, "не удалось сформировать запрос")
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.WrapError(err, errcodes.TimeoutExceeded, "истёк таймаут загрузки okved.json")
		}
		return nil, domain.WrapError(err, errcodes.CatalogFetchError, "не удалось загрузить okved.json")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewError(
			errcodes.CatalogFetchError,
			fmt.Sprintf("источник ответил статусом %d", resp.StatusCode),
		)
	}

	if resp.ContentLength > r.maxBodyBytes {
		return nil, domain.NewError(errcodes.CatalogTooLarge, "файл okved.json слишком большой")
	}

	// Content-Length может отсутствовать, поэтому лимит проверяется и при чтении.
	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBodyBytes+1))
	if err != nil {
		return nil, domain.WrapError(err, errcodes.CatalogFetchError, "не удалось прочитать okved.json")
	}

	if int64(len(body)) > r.maxBodyBytes {
		return nil, domain.NewError(errcodes.CatalogTooLarge, "файл okved.json слишком большой")
	}

	return body, nil
}
