package database_test

import (
	"testing"

	"github.com/digisamuday/samuday/internal/config"
	"github.com/digisamuday/samuday/internal/database"
	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/services"
	"github.com/digisamuday/samuday/internal/testhelpers"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestConnectSQLiteDrivers(t *testing.T) {
	for _, dbType := range []string{"sqlite", "sqlite-pure"} {
		t.Run(dbType, func(t *testing.T) {
			cfg := testhelpers.NewTestConfig(t)
			cfg.DBType = dbType
			db := testhelpers.SetupTestDBWithConfig(t, cfg)

			require.True(t, db.Migrator().HasTable(&models.Resident{}))
			require.True(t, db.Migrator().HasTable(&models.ActivityLog{}))

			resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
			var stored models.Resident
			require.NoError(t, db.First(&stored, resident.ID).Error)
			require.Equal(t, models.RoleResident, stored.Role)
		})
	}
}

func TestSQLiteForeignKeysEnforced(t *testing.T) {
	db := testhelpers.SetupTestDB(t)

	err := db.Create(&models.Complaint{Title: "Orphan", Description: "No owner", Status: models.ComplaintOpen, ResidentID: 9999}).Error
	require.Error(t, err)
}

func TestDialectorUnsupported(t *testing.T) {
	_, err := database.Dialector(&config.Config{DBType: "oracle"})
	require.ErrorContains(t, err, "unsupported database type")

	_, err = database.Connect(&config.Config{DBType: "oracle"})
	require.Error(t, err)
}

func TestDialectorNames(t *testing.T) {
	cases := map[string]string{
		"mysql":     "mysql",
		"mariadb":   "mysql",
		"postgres":  "postgres",
		"sqlserver": "sqlserver",
		"sqlite":    "sqlite",
	}
	for dbType, name := range cases {
		dialector, err := database.Dialector(&config.Config{
			DBType: dbType, DBHost: "db", DBPort: "1234", DBUser: "u", DBPassword: "p", DBDatabase: "samuday",
		})
		require.NoError(t, err, dbType)
		require.Equal(t, name, dialector.Name(), dbType)
	}
}

func TestSQLiteDSN(t *testing.T) {
	require.Equal(t, "app.db?_foreign_keys=1", database.SQLiteDSN("app.db", false))
	require.Equal(t, "file:x?mode=memory&_foreign_keys=1", database.SQLiteDSN("file:x?mode=memory", false))
	require.Equal(t, "app.db?_pragma=foreign_keys(1)", database.SQLiteDSN("app.db", true))
	require.Equal(t, "app.db?_foreign_keys=0", database.SQLiteDSN("app.db?_foreign_keys=0", false))
}

func TestLogLevel(t *testing.T) {
	require.Equal(t, logger.Silent, database.LogLevel("silent"))
	require.Equal(t, logger.Error, database.LogLevel("ERROR"))
	require.Equal(t, logger.Info, database.LogLevel("info"))
	require.Equal(t, logger.Warn, database.LogLevel(""))
}

func TestCascadeOnRawDelete(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	resident := testhelpers.CreateResident(t, db, "asha", models.RoleResident)
	_, err := services.FileComplaint(db, resident, services.ComplaintInput{Title: strPtr("Tap"), Description: strPtr("Leaks")})
	require.NoError(t, err)

	// the declared constraint removes owned rows even without the service cascade
	require.NoError(t, db.Exec("DELETE FROM residents WHERE id = ?", resident.ID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Complaint{}).Count(&count).Error)
	require.Zero(t, count)
}

func strPtr(s string) *string {
	return &s
}
