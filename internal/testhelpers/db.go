package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/digisamuday/samuday/internal/config"
	"github.com/digisamuday/samuday/internal/database"
	"github.com/digisamuday/samuday/internal/models"
	"github.com/digisamuday/samuday/internal/services"
	"gorm.io/gorm"
)

// TestPassword is the password of every account made by CreateResident
const TestPassword = "Sup3r-Secret!"

// TestBcryptCost keeps hashing fast in tests
const TestBcryptCost = 4

// NewTestConfig returns a config for a private in-memory sqlite database named after the test
func NewTestConfig(t *testing.T) *config.Config {
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	return &config.Config{
		Port:              "3000",
		CORSOrigins:       "*",
		DBType:            "sqlite",
		DBDatabase:        fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		DBConnectionLimit: 1,
		DBLogLevel:        "silent",
		BcryptCost:        TestBcryptCost,
	}
}

// SetupTestDB connects to a migrated in-memory database that is closed when the test ends
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupTestDBWithConfig(t, NewTestConfig(t))
}

// SetupTestDBWithConfig connects to and migrates the database described by cfg
func SetupTestDBWithConfig(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(db); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// CreateResident registers an account with TestPassword
func CreateResident(t *testing.T, db *gorm.DB, username string, role models.Role) *models.Resident {
	t.Helper()
	resident, err := services.Register(db, services.RegisterInput{
		Username:    username,
		Password:    TestPassword,
		FirstName:   strings.ToUpper(username[:1]) + username[1:],
		Email:       username + "@example.com",
		PhoneNumber: "5550100",
		ApartmentNo: "A-101",
		Role:        role.String(),
	}, TestBcryptCost)
	if err != nil {
		t.Fatalf("Failed to create resident %s: %v", username, err)
	}
	return resident
}

// Login returns the token of an account made by CreateResident
func Login(t *testing.T, db *gorm.DB, username string) string {
	t.Helper()
	_, token, err := services.Authenticate(db, username, TestPassword)
	if err != nil {
		t.Fatalf("Failed to log in %s: %v", username, err)
	}
	return token
}
