package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	DB struct {
		DSN string
	} `mapstructure:"db"`

	JWT struct {
		Secret string
	} `mapstructure:"jwt"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`
}

// Load reads configuration from the given file, with APP_-prefixed
// environment variables taking precedence. A .env file in the working
// directory is loaded first. The config file is optional; defaults cover a
// local SQLite deployment.
func Load(path string) (Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("app.env", "dev")
	v.SetDefault("http.addr", ":5000")
	v.SetDefault("db.dsn", "assets.sqlite3")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("metrics.enabled", true)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unmarshaling config: %w", err)
	}
	return c, nil
}
