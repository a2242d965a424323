package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "storefront", cfg.DB.Name)
	assert.Equal(t, 10, cfg.DB.MaxOpenConns)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("STORE_DB_HOST", "db.internal")
	t.Setenv("STORE_DB_PASSWORD", "secret")
	t.Setenv("STORE_SERVER_ADDR", ":9000")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "secret", cfg.DB.Password)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestDSN(t *testing.T) {
	db := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "pass",
		Name:     "storefront",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=pass dbname=storefront sslmode=disable",
		db.DSN())
}
