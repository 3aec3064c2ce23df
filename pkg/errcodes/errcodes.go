package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Коды игры «Найди свой ОКВЭД по номеру телефона»
	InvalidPhoneFormat failure.ErrorCode = "InvalidPhoneFormat" // Номер не распознан как российский мобильный
	EmptyCatalog       failure.ErrorCode = "EmptyCatalog"       // Справочник ОКВЭД пуст
	CatalogFetchError  failure.ErrorCode = "CatalogFetchError"  // Не удалось загрузить справочник из источника
	CatalogTooLarge    failure.ErrorCode = "CatalogTooLarge"    // Источник отдал файл больше лимита
	InvalidCatalogData failure.ErrorCode = "InvalidCatalogData" // Некорректный JSON или ни одной валидной записи
)
