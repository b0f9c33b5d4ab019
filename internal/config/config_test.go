package config

import (
	"testing"
	"time"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialhub/api/internal/utils"
)

func TestFromEnvSet_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := FromEnvSet(env.EnvSet{})
	req.NoError(err)
	req.Equal(8080, cfg.Port)
	req.Equal(DriverPostgres, cfg.StoreDriver)
	req.NotEmpty(cfg.DatabaseURL)
	req.Equal(5*time.Minute, cfg.CacheTTL)
	req.Equal("plain", cfg.PasswordScheme)
	req.False(cfg.RedisEnabled())
	req.Equal(":8080", cfg.Addr())

	passwords, err := cfg.Passwords()
	req.NoError(err)
	req.IsType(utils.PlainTextPasswords{}, passwords)
}

func TestFromEnvSet_Overrides(t *testing.T) {
	req := require.New(t)

	cfg, err := FromEnvSet(env.EnvSet{
		"PORT":            "9000",
		"STORE_DRIVER":    " SQLite ",
		"SQLITE_PATH":     "/tmp/app.db",
		"REDIS_ADDR":      "localhost:6379",
		"REDIS_DB":        "2",
		"CACHE_TTL":       "30s",
		"PASSWORD_SCHEME": "bcrypt",
		"LOG_LEVEL":       "DEBUG",
	})
	req.NoError(err)
	req.Equal(9000, cfg.Port)
	req.Equal(DriverSQLite, cfg.StoreDriver)
	req.Equal("/tmp/app.db", cfg.SQLitePath)
	req.True(cfg.RedisEnabled())
	req.Equal(2, cfg.RedisDB)
	req.Equal(30*time.Second, cfg.CacheTTL)
	req.Equal("DEBUG", cfg.LogLevel)

	passwords, err := cfg.Passwords()
	req.NoError(err)
	req.IsType(utils.BcryptPasswords{}, passwords)
}

func TestFromEnvSet_Invalid(t *testing.T) {
	tests := []struct {
		name string
		es   env.EnvSet
	}{
		{"unknown driver", env.EnvSet{"STORE_DRIVER": "mysql"}},
		{"bad port", env.EnvSet{"PORT": "0"}},
		{"non numeric port", env.EnvSet{"PORT": "http"}},
		{"unknown password scheme", env.EnvSet{"PASSWORD_SCHEME": "md5"}},
		{"negative ttl", env.EnvSet{"CACHE_TTL": "-1s"}},
		{"unknown gin mode", env.EnvSet{"GIN_MODE": "prod"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnvSet(tt.es)
			assert.Error(t, err)
		})
	}
}
