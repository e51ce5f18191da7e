package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "despensa-api", cfg.App.Name)
	assert.Equal(t, "memory", cfg.DB.Driver)
	assert.Equal(t, 30, cfg.Stock.ApproachingDays)
	assert.Equal(t, 30, cfg.Stock.ExpiringDefaultDays)
	assert.Equal(t, "despensa-api", cfg.JWT.Issuer)
	assert.Equal(t, "./docs/swagger.json", cfg.Swagger.File)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STOCK_APPROACHING_DAYS", "15")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 15, cfg.Stock.ApproachingDays)
	assert.True(t, cfg.JWT.Enabled())
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("HTTP_PORT", "abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "despensa", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/despensa?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestHTTPConfig_Addr(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", HTTPConfig{Host: "127.0.0.1", Port: 8080}.Addr())
}
