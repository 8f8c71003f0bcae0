package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding file settings,
// e.g. TEXTBOOK_RSA_DATABASE_DSN.
const EnvPrefix = "TEXTBOOK_RSA"

// RestConfig holds the settings of the REST service
type RestConfig struct {
	Port     string           `mapstructure:"port" validate:"required,numeric"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
	Keys     KeySettings      `mapstructure:"keys"`
}

// Validate checks the config and each nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	return c.Keys.Validate()
}

// InitializeRestConfig loads the REST config from path and the environment
func InitializeRestConfig(path string) (*RestConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	keys := DefaultKeySettings()
	v.SetDefault("port", "8080")
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("keys.public_exponent", keys.PublicExponent)
	v.SetDefault("keys.prime_upper_bound", keys.PrimeUpperBound)
	v.SetDefault("keys.min_modulus", keys.MinModulus)
	v.SetDefault("keys.max_modulus", keys.MaxModulus)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
