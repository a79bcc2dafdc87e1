package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Wallet   WalletConfig   `mapstructure:"wallet"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// credentialKeyRules validates a credential key loaded on its own.
const credentialKeyRules = "required,min=32"

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	// CredentialKey is the process secret the password digests are keyed with.
	// Changing it invalidates every stored password.
	CredentialKey        string `mapstructure:"credential_key" validate:"required,min=32"` // keep in sync with credentialKeyRules
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=44640"` // Max 31 days
	PasswordMinLength    int    `mapstructure:"password_min_length" validate:"required,gt=0,lte=128"`
}

// WalletConfig contains card wallet policy settings.
type WalletConfig struct {
	// RequireHolderMatch restricts added cards to the account holder's own name.
	RequireHolderMatch bool `mapstructure:"require_holder_match"`
}
