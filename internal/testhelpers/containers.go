// containers.go
//
// Residential society management data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of samuday.
// samuday is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// samuday is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with samuday.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/digisamuday/samuday/internal/config"
	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Credentials of the databases started by StartDatabaseContainer
const (
	ContainerDatabase = "samuday"
	ContainerUser     = "samuday"
	ContainerPassword = "samuday-pass"
)

// DatabaseContainer is a running database and the config that reaches it
type DatabaseContainer struct {
	Container testcontainers.Container
	Config    *config.Config
}

// Terminate stops the container
func (dc *DatabaseContainer) Terminate(t *testing.T) {
	if dc == nil || dc.Container == nil {
		return
	}
	if err := dc.Container.Terminate(context.Background()); err != nil {
		logMessage(t, "Failed to terminate database container: %v", err)
	}
}

type databaseImage struct {
	image     string
	port      string
	env       map[string]string
	readyLog  string
	readyRuns int
}

func imageFor(dbType string) (databaseImage, error) {
	switch dbType {
	case "mysql", "mariadb":
		return databaseImage{
			image: envOr("DB_IMAGE", "mariadb:11.4"),
			port:  "3306",
			env: map[string]string{
				"MARIADB_ROOT_PASSWORD": ContainerPassword,
				"MARIADB_DATABASE":      ContainerDatabase,
				"MARIADB_USER":          ContainerUser,
				"MARIADB_PASSWORD":      ContainerPassword,
			},
			// the entrypoint starts a temporary server before the real one
			readyLog:  "ready for connections",
			readyRuns: 2,
		}, nil
	case "postgres", "postgresql":
		return databaseImage{
			image: envOr("POSTGRES_IMAGE", "postgres:17-alpine"),
			port:  "5432",
			env: map[string]string{
				"POSTGRES_DB":       ContainerDatabase,
				"POSTGRES_USER":     ContainerUser,
				"POSTGRES_PASSWORD": ContainerPassword,
			},
			readyLog:  "database system is ready to accept connections",
			readyRuns: 2,
		}, nil
	}
	return databaseImage{}, fmt.Errorf("no container image for DB_TYPE %s", dbType)
}

// StartDatabaseContainer starts a database of dbType and returns a config pointing at it.
// t may be nil when called outside of tests.
func StartDatabaseContainer(t *testing.T, dbType string) (*DatabaseContainer, error) {
	ctx := context.Background()

	img, err := imageFor(dbType)
	if err != nil {
		return nil, err
	}

	tcpPort, err := nat.NewPort("tcp", img.port)
	if err != nil {
		return nil, fmt.Errorf("failed to create database port: %w", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        img.image,
			ExposedPorts: []string{string(tcpPort)},
			Env:          img.env,
			WaitingFor: wait.ForAll(
				wait.ForLog(img.readyLog).WithOccurrence(img.readyRuns),
				wait.ForListeningPort(tcpPort),
			).WithDeadline(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", img.image, err)
	}
	dc := &DatabaseContainer{Container: container}

	host, err := container.Host(ctx)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	mapped, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		dc.Terminate(t)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	dc.Config = &config.Config{
		Port:              "3000",
		CORSOrigins:       "*",
		DBType:            dbType,
		DBHost:            host,
		DBPort:            mapped.Port(),
		DBDatabase:        ContainerDatabase,
		DBUser:            ContainerUser,
		DBPassword:        ContainerPassword,
		DBConnectionLimit: 5,
		DBLogLevel:        "warn",
		BcryptCost:        TestBcryptCost,
	}
	logMessage(t, "%s container listening at %s:%s", img.image, host, mapped.Port())

	return dc, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
