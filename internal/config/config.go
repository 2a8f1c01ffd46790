package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// URL is the Postgres connection string. It is the single environment
	// knob that selects the target database (SIGNUP_DATABASE_URL).
	URL string `mapstructure:"url" validate:"required"`

	// InsecureSkipTLSVerify downgrades the connection to sslmode=require,
	// which encrypts but does not verify the server certificate. It must be
	// switched on explicitly; certificate verification is the default.
	InsecureSkipTLSVerify bool `mapstructure:"insecure_skip_tls_verify"`
}

// AuthConfig contains credential-hashing settings.
type AuthConfig struct {
	// BcryptCost is the bcrypt work factor used when hashing passwords.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"required,gte=4,lte=31"`
}
