package entity

// OkvedItem — запись справочника ОКВЭД.
// Code хранится в каноническом виде: только цифры, без точек.
// После загрузки справочника записи не изменяются.
type OkvedItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
