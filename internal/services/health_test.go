package services_test

import (
	"testing"

	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckSQLite(t *testing.T) {
	cfg := testhelpers.NewTestConfig(t)
	db := testhelpers.SetupTestDBWithConfig(t, cfg)

	result := services.HealthCheck(cfg, db)
	require.Equal(t, "healthy", result.Status)
	require.Equal(t, "ok", result.Database)
	require.Empty(t, result.DatabaseHost)
	require.Equal(t, "sqlite", result.Details["database_type"])
}

func TestHealthCheckUnreachableHost(t *testing.T) {
	cfg := testhelpers.NewTestConfig(t)
	db := testhelpers.SetupTestDBWithConfig(t, cfg)

	// the sqlite handle stays healthy while the configured network host is down
	cfg.DBType = "postgres"
	cfg.DBHost = "127.0.0.1"
	cfg.DBPort = "1"

	result := services.HealthCheck(cfg, db)
	require.Equal(t, "unhealthy", result.Status)
	require.Equal(t, "ok", result.Database)
	require.Equal(t, "unreachable", result.DatabaseHost)
	require.Contains(t, result.ErrorMessage, "Database host ping failed")
}
