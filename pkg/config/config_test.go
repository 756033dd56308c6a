package config

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsEnDevelopment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DevJWTSecret, cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL())
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:3001", cfg.HTTP.FrontendURL)
	assert.Equal(t, StoreDriverPostgres, cfg.App.StoreDriver)
	assert.True(t, cfg.DB.AutoMigrate)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRATION_MINUTES", "30")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, StoreDriverMemory, cfg.App.StoreDriver)
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_SinSecretFueraDeDevelopment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate_Rechazos(t *testing.T) {
	base := func() *Config {
		return &Config{
			App: AppConfig{Env: "production", StoreDriver: StoreDriverMemory},
			JWT: JWTConfig{Secret: "x", Expiration: 10},
		}
	}

	c := base()
	c.JWT.Expiration = 0
	assert.Error(t, c.Validate(), "expiración no positiva")

	c = base()
	c.App.StoreDriver = "mongo"
	assert.Error(t, c.Validate(), "driver desconocido")

	c = base()
	c.DB.MaxConns = -1
	assert.Error(t, c.Validate(), "max conns negativo")

	c = base()
	c.DB.MaxConns = math.MaxInt32 + 1
	assert.Error(t, c.Validate(), "max conns no cabe en int32")

	c = base()
	c.DB.MaxConns = math.MaxInt32
	assert.NoError(t, c.Validate())

	assert.NoError(t, base().Validate())
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "dir", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/dir?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", c.ConnectionString())
}
