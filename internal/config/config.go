package config

import "github.com/spf13/viper"

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`

	API struct {
		BaseURL    string `mapstructure:"base_url"`
		TimeoutSec int    `mapstructure:"timeout_sec"`
	} `mapstructure:"api"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Sales struct {
		GSTRate float64 `mapstructure:"gst_rate"`
	} `mapstructure:"sales"`

	Search struct {
		DebounceMS int `mapstructure:"debounce_ms"`
	} `mapstructure:"search"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	v.SetDefault("api.timeout_sec", 15)
	v.SetDefault("sales.gst_rate", 18)
	v.SetDefault("search.debounce_ms", 500)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
