package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Addr       string        `mapstructure:"ADDR"`
	MongoURI   string        `mapstructure:"MONGO_URI"`
	DBName     string        `mapstructure:"DB_NAME"`
	SigningKey string        `mapstructure:"SIGNING_KEY"`
	TokenTTL   time.Duration `mapstructure:"TOKEN_TTL"`
}

// New reads process configuration from MESTO_-prefixed environment
// variables. The signing key has no default: sessions must not be
// signable with a value an operator never chose.
func New() (*Config, error) {
	viper.SetEnvPrefix("MESTO")

	viper.SetDefault("ADDR", ":3000")
	viper.SetDefault("MONGO_URI", "mongodb://127.0.0.1:27017")
	viper.SetDefault("DB_NAME", "mestodb")
	viper.SetDefault("TOKEN_TTL", "168h")

	envs := []string{"ADDR", "MONGO_URI", "DB_NAME", "SIGNING_KEY", "TOKEN_TTL"}
	for _, key := range envs {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}

	if cfg.SigningKey == "" {
		return nil, errors.New("MESTO_SIGNING_KEY is required")
	}

	if cfg.TokenTTL <= 0 {
		return nil, errors.New("token TTL must be positive")
	}

	return &cfg, nil
}
