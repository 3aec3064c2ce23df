package config

import "time"

type Okved struct {
	URL          string        `env:"OKVED_URL" envDefault:"https://raw.githubusercontent.com/bergstar/testcase/master/okved.json"`
	FetchTimeout time.Duration `env:"OKVED_FETCH_TIMEOUT" envDefault:"5s"`
	MaxBodyBytes int64         `env:"OKVED_MAX_BODY_BYTES" envDefault:"10485760"`

	// CacheTTL == 0 означает «загрузить один раз и держать до конца процесса».
	CacheTTL time.Duration `env:"OKVED_CACHE_TTL" envDefault:"0"`

	// RefreshInterval == 0 отключает фоновое обновление справочника.
	RefreshInterval time.Duration `env:"OKVED_REFRESH_INTERVAL" envDefault:"0"`

	// Token нужен только для источников за bearer-авторизацией.
	Token string `env:"OKVED_TOKEN" json:"-"`
}
