package services

import (
	"fmt"
	"log"
	"net"

	"github.com/digisamuday/samuday/internal/config"
	"github.com/digisamuday/samuday/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	DatabaseHost string            `json:"database_host,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck pings the database and, for networked databases, probes the database host
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else if err := sqlDB.Ping(); err != nil {
		result.Status = "unhealthy"
		result.Database = "unreachable"
		result.Details["database_ping_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
		log.Printf("Health check failed - database ping: %v", err)
	} else {
		result.Database = "ok"
		result.Details["database_type"] = cfg.DBType
		result.Details["database_name"] = cfg.DBDatabase
	}

	if cfg.IsNetworkDB() {
		address := net.JoinHostPort(cfg.DBHost, cfg.DBPort)
		if err := utils.PingDatabaseHost(cfg.DBHost, cfg.DBPort); err != nil {
			result.Status = "unhealthy"
			result.DatabaseHost = "unreachable"
			result.Details["database_host_error"] = err.Error()
			if result.ErrorMessage == "" {
				result.ErrorMessage = fmt.Sprintf("Database host ping failed: %v", err)
			} else {
				result.ErrorMessage += fmt.Sprintf("; Database host ping failed: %v", err)
			}
			log.Printf("Health check failed - database host ping: %v", err)
		} else {
			result.DatabaseHost = "ok"
			result.Details["database_host"] = address
		}
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
