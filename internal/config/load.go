package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Load reads configuration from environment variables with the SIGNUP_
// prefix (e.g. SIGNUP_DATABASE_URL, SIGNUP_SERVER_PORT). Environment
// variables take precedence over the built-in defaults.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the service runnable with nothing but a database URL.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.insecure_skip_tls_verify", false)
	v.SetDefault("auth.bcrypt_cost", bcrypt.DefaultCost)

	v.SetEnvPrefix("SIGNUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env vars through Unmarshal for
	// keys that have no default, so bind the required ones explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"database.insecure_skip_tls_verify",
		"auth.bcrypt_cost",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
