package bootstrap

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ServerAddr     string `mapstructure:"SERVER_ADDR"`
	WebDir         string `mapstructure:"WEB_DIR"`
	EngineDepth    int    `mapstructure:"ENGINE_DEPTH"`
	EngineMaxDepth int    `mapstructure:"ENGINE_MAX_DEPTH"`
	EngineWorkers  int    `mapstructure:"ENGINE_WORKERS"`
	EngineSide     string `mapstructure:"ENGINE_SIDE"`
	RedisUrl       string `mapstructure:"REDIS_URL"`
	MongoUri       string `mapstructure:"MONGO_URI"`
	MongoDatabase  string `mapstructure:"MONGO_DATABASE"`
	IsLocalCors    bool   `mapstructure:"LOCAL_CORS"`
}

var defaults = map[string]any{
	"SERVER_ADDR":      ":2888",
	"WEB_DIR":          "",
	"ENGINE_DEPTH":     5,
	"ENGINE_MAX_DEPTH": 6,
	"ENGINE_WORKERS":   1,
	"ENGINE_SIDE":      "black",
	"REDIS_URL":        "",
	"MONGO_URI":        "",
	"MONGO_DATABASE":   "chessmm",
	"LOCAL_CORS":       false,
}

// Setup reads cfgPath (a .env or any format viper knows) on top of the defaults,
// then lets environment variables override both. A missing file is not an error,
// an empty cfgPath skips the file entirely.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if strings.HasSuffix(cfgPath, ".env") {
			v.SetConfigType("env")
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
