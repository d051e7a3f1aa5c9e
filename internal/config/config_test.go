package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "CORS_ORIGINS", "DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE", "DB_USER",
		"DB_PASSWORD", "DB_CONNECTION_LIMIT", "DB_LOG_LEVEL", "BCRYPT_COST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DATABASE", "samuday.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "3000", cfg.Port)
	require.Equal(t, "sqlite", cfg.DBType)
	require.Equal(t, "*", cfg.CORSOrigins)
	require.Equal(t, 5, cfg.DBConnectionLimit)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Equal(t, "warn", cfg.DBLogLevel)
	require.False(t, cfg.IsNetworkDB())
}

func TestLoadNetworkDatabase(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("DB_DATABASE", "samuday")

	_, err := Load()
	require.ErrorContains(t, err, "DB_USER")

	t.Setenv("DB_USER", "samuday")
	t.Setenv("DB_CONNECTION_LIMIT", "12")
	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.IsNetworkDB())
	require.Equal(t, "5432", cfg.DBPort)
	require.Equal(t, 12, cfg.DBConnectionLimit)
}

func TestLoadValidation(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	require.ErrorContains(t, err, "DB_DATABASE")

	t.Setenv("DB_DATABASE", "samuday.db")
	t.Setenv("BCRYPT_COST", "40")
	_, err = Load()
	require.ErrorContains(t, err, "BCRYPT_COST")

	t.Setenv("BCRYPT_COST", "not-a-number")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10, cfg.BcryptCost)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are present, even when empty
	os.Unsetenv("DB_DATABASE")
	os.Unsetenv("PORT")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DATABASE=from-file.db\nPORT=8081\n"), 0o600))

	require.NoError(t, LoadEnvFile(path))
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "from-file.db", cfg.DBDatabase)
	require.Equal(t, "8081", cfg.Port)

	require.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}
