package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup. Values come from an
// optional config.yaml in the working directory, overridden by STOCK_*
// environment variables (STOCK_DATABASE_URL, STOCK_AUTH_SECRET, ...).
type Config struct {
	ServerAddr     string
	DatabaseURL    string
	JWTSecret      string
	AllowedOrigins []string
	// AllowedRoles restricts the API to the named token roles. Empty means
	// any authenticated caller is accepted.
	AllowedRoles     []string
	UploadDir        string
	RateLimitEnabled bool
}

func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("uploads.dir", "uploads")
	v.SetDefault("cors.origins", []string{"http://localhost:4200", "http://localhost:5173"})
	v.SetDefault("auth.roles", []string{})
	v.SetDefault("ratelimit.enabled", true)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("STOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := Config{
		ServerAddr:       v.GetString("server.addr"),
		DatabaseURL:      v.GetString("database.url"),
		JWTSecret:        v.GetString("auth.secret"),
		AllowedOrigins:   v.GetStringSlice("cors.origins"),
		AllowedRoles:     v.GetStringSlice("auth.roles"),
		UploadDir:        v.GetString("uploads.dir"),
		RateLimitEnabled: v.GetBool("ratelimit.enabled"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database.url (STOCK_DATABASE_URL) is not set")
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("auth.secret (STOCK_AUTH_SECRET) is not set")
	}

	return cfg, nil
}
