// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// PlayRequest Запрос на раунд игры: номер телефона в произвольном формате
type PlayRequest struct {
	Phone string `json:"phone" validate:"required"`
}

// MatchResult Результат подбора ОКВЭД по номеру телефона
type MatchResult struct {
	// NormalizedPhone Номер в каноническом виде +7XXXXXXXXXX
	NormalizedPhone string `json:"normalizedPhone"`

	// OkvedCode Код ОКВЭД (только цифры)
	OkvedCode string `json:"okvedCode"`

	// OkvedName Название вида деятельности
	OkvedName string `json:"okvedName"`

	// MatchLength Длина общего окончания номера и кода
	MatchLength int `json:"matchLength"`

	// Fallback Совпадение нулевой длины: код выбран без реального пересечения цифр
	Fallback bool `json:"fallback"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
