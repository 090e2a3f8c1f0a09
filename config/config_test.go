package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "user", cfg.User)
	assert.Equal(t, ":8080", cfg.HTTPAddress)
	assert.Equal(t, "localhost", cfg.RedirectHost)
	assert.Equal(t, 8090, cfg.RedirectPort)
	assert.Equal(t, 5*time.Minute, cfg.RedirectTimeout)
	assert.Equal(t, DefaultSpreadsheet, cfg.Spreadsheet)
	assert.Equal(t, DefaultRange, cfg.Range)
	assert.Equal(t, []string{"https://www.googleapis.com/auth/spreadsheets.readonly"}, cfg.Scopes)
	assert.Empty(t, cfg.Tokens)
	assert.False(t, cfg.NoBrowser)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("DBUDGETEER_REDIRECT_PORT", "9999")
	t.Setenv("DBUDGETEER_REDIRECT_TIMEOUT", "0s")
	t.Setenv("DBUDGETEER_SCOPES", "a,b")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.RedirectPort)
	assert.Equal(t, time.Duration(0), cfg.RedirectTimeout)
	assert.Equal(t, []string{"a", "b"}, cfg.Scopes)
}

func TestLoadDotEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("DBUDGETEER_RANGE=Budget!A1:D20\nDBUDGETEER_USER=alice\n"), 0600))

	// ... godotenv does not override variables that are already set
	t.Setenv("DBUDGETEER_USER", "bob")
	t.Setenv("DBUDGETEER_RANGE", "")
	os.Unsetenv("DBUDGETEER_RANGE")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "Budget!A1:D20", cfg.Range)
	assert.Equal(t, "bob", cfg.User)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("DBUDGETEER_REDIRECT_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadBlankSpreadsheet(t *testing.T) {
	t.Setenv("DBUDGETEER_SPREADSHEET", "")
	t.Setenv("DBUDGETEER_RANGE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultSpreadsheet, cfg.Spreadsheet)
	assert.Equal(t, DefaultRange, cfg.Range)
}
