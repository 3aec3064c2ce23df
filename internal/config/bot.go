package config

type Bot struct {
	Token string `env:"BOT_TOKEN" json:"-"`

	// AdminID — чат, которому разрешены служебные команды вроде /refresh.
	AdminID int64 `env:"BOT_ADMIN_ID"`
}
