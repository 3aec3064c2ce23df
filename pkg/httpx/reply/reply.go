package reply

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"okved_game/pkg/contextx"
	"okved_game/pkg/errcodes"
	"okved_game/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

func (e *errorResponse) WithDefaultCode(code failure.ErrorCode) {
	if e.Code == "" {
		e.Code = code.String()
	}
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Created(w http.ResponseWriter) {
	w.WriteHeader(http.StatusCreated)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// codedError реализуется доменными ошибками приложения; reply узнаёт их,
// не импортируя internal-пакеты.
type codedError interface {
	error
	ErrorCode() failure.ErrorCode
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: supportID(ctx),
	}

	var coded codedError
	if response.Code == "" && errors.As(err, &coded) {
		response.Code = coded.ErrorCode().String()
		response.Message = coded.Error()
	}

	switch {
	case failure.IsInvalidArgumentError(err):
		response.WithDefaultCode(errcodes.ValidationError)
		JSON(ctx, w, http.StatusBadRequest, response)
	case failure.IsNotFoundError(err):
		response.WithDefaultCode(errcodes.NotFound)
		JSON(ctx, w, http.StatusNotFound, response)
	case isCatalogUnavailable(response.Code):
		// Справочник недоступен или пуст: проблема на нашей стороне,
		// но временная — клиенту имеет смысл повторить позже.
		JSON(ctx, w, http.StatusServiceUnavailable, response)
	default:
		response.WithDefaultCode(errcodes.InternalServerError)
		JSON(ctx, w, http.StatusInternalServerError, response)
	}
}

func isCatalogUnavailable(code string) bool {
	switch failure.ErrorCode(code) {
	case errcodes.EmptyCatalog,
		errcodes.CatalogFetchError,
		errcodes.CatalogTooLarge,
		errcodes.InvalidCatalogData,
		errcodes.TimeoutExceeded:
		return true
	}

	return false
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
