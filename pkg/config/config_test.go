package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Sheets.Enabled)
	assert.Equal(t, "Consultation", cfg.Sheets.Worksheet)
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_NAME", "test.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.Database)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestLoadRequiresSpreadsheetIDWhenMirrorEnabled(t *testing.T) {
	t.Setenv("SHEETS_ENABLED", "true")
	t.Setenv("SPREADSHEET_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SPREADSHEET_ID")
}

func TestGetDSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: "sqlite", Database: "catalog.db"}
	assert.Equal(t, "catalog.db", sqlite.GetDSN())

	pg := DatabaseConfig{
		Driver:   "postgres",
		Host:     "db.internal",
		Port:     5432,
		Username: "catalog",
		Password: "secret",
		Database: "catalog",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=catalog password=secret dbname=catalog sslmode=disable",
		pg.GetDSN())

	mem := DatabaseConfig{Driver: "memory"}
	assert.Equal(t, "", mem.GetDSN())
}

func TestGetServerAddr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 8081}
	assert.Equal(t, "0.0.0.0:8081", cfg.GetServerAddr())
}

func TestAppendRange(t *testing.T) {
	cfg := SheetsConfig{Worksheet: "Consultation"}
	assert.Equal(t, "Consultation!A1:G", cfg.AppendRange())
}
