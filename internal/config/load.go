package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "WALLET"

// Default values applied when no source sets a key.
const (
	DefaultPort                 = 8080
	DefaultLogLevel             = "info"
	DefaultTokenLifetimeMinutes = 60
	DefaultPasswordMinLength    = 6
)

// keys lists every setting so each one can be bound to its environment
// variable; viper only consults AutomaticEnv for keys it already knows.
var keys = []string{
	"server.port",
	"server.log_level",
	"database.url",
	"auth.credential_key",
	"auth.jwt_secret",
	"auth.token_lifetime_minutes",
	"auth.password_min_length",
	"wallet.require_holder_match",
}

// Load configuration from the working directory and the environment.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom loads configuration, looking for optional .env and config.yaml
// files in dir.
func LoadFrom(dir string) (*Config, error) {
	v, err := newViper(dir)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadCredentialKey reads only auth.credential_key from the same sources as
// Load. Tools that digest credentials need nothing else.
func LoadCredentialKey() (string, error) {
	return LoadCredentialKeyFrom(".")
}

// LoadCredentialKeyFrom is LoadCredentialKey with .env and config.yaml read from dir.
func LoadCredentialKeyFrom(dir string) (string, error) {
	v, err := newViper(dir)
	if err != nil {
		return "", err
	}

	key := v.GetString("auth.credential_key")
	if err := validator.New().Var(key, credentialKeyRules); err != nil {
		return "", fmt.Errorf("config validation failed: auth.credential_key: %w", err)
	}
	return key, nil
}

// newViper builds a viper instance with defaults, the optional config file
// and environment bindings applied.
func newViper(dir string) (*viper.Viper, error) {
	// A .env file never overrides variables already set in the process.
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("auth.token_lifetime_minutes", DefaultTokenLifetimeMinutes)
	v.SetDefault("auth.password_min_length", DefaultPasswordMinLength)
	v.SetDefault("wallet.require_holder_match", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	return v, nil
}
