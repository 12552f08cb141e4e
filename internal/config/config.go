package config

import (
	"github.com/spf13/viper"

	"github.com/mrlokans/mybooks/internal/paths"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Audit
		Library
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // silent, error, warn or info
	}
	Audit struct {
		RetentionDays int // Days to keep audit events, pruned at startup (default: 30)
	}
	Library struct {
		Locale string // BCP 47 tag used for filtering and sorting, "und" for root collation
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", paths.DefaultDatabasePath())
	v.SetDefault("database_log_level", "warn")
	v.SetDefault("audit_retention_days", 30)
	v.SetDefault("locale", "und")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Audit: Audit{
			RetentionDays: v.GetInt("AUDIT_RETENTION_DAYS"),
		},
		Library: Library{
			Locale: v.GetString("LOCALE"),
		},
	}
}
