package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Catalog.Source)
	assert.Equal(t, "data/properties.json", cfg.Catalog.FilePath)
	assert.Equal(t, 10*time.Second, cfg.Mail.Timeout)
	assert.Equal(t, "catalog", cfg.Metrics.Prefix)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("DB_NAME", "catalog_test")
	t.Setenv("MAIL_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Catalog.Source)
	assert.Equal(t, "catalog_test", cfg.DB.Name)
	assert.Equal(t, 3*time.Second, cfg.Mail.Timeout)
}

func TestLoad_InvalidCatalogSource(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "mongodb")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_SOURCE")
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "localhost", Port: "5432", User: "postgres",
		Password: "postgres", Name: "property_catalog", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=property_catalog sslmode=disable",
		db.GetDSN())
}
