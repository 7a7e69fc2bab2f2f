package bootstrap

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	ServerPort   string  `mapstructure:"SERVER_PORT"`
	RedisUrl     string  `mapstructure:"REDIS_URL"`
	RedisChannel string  `mapstructure:"REDIS_CHANNEL"`
	IsLocalCors  bool    `mapstructure:"LOCAL_CORS"`
	BoardWidth   int     `mapstructure:"BOARD_WIDTH"`
	BoardHeight  int     `mapstructure:"BOARD_HEIGHT"`
	Komi         float64 `mapstructure:"KOMI"`
	LogDebug     bool    `mapstructure:"LOG_DEBUG"`
}

var keys = []string{
	"SERVER_PORT", "REDIS_URL", "REDIS_CHANNEL", "LOCAL_CORS",
	"BOARD_WIDTH", "BOARD_HEIGHT", "KOMI", "LOG_DEBUG",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("REDIS_CHANNEL", "goban:events")
	v.SetDefault("LOCAL_CORS", false)
	v.SetDefault("BOARD_WIDTH", 19)
	v.SetDefault("BOARD_HEIGHT", 19)
	v.SetDefault("KOMI", 6.5)
	v.SetDefault("LOG_DEBUG", false)
}

// Setup reads cfgPath (a .env file) and lets environment variables
// override it. A missing file is not an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(cfgPath)
	v.SetConfigType("env")
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
