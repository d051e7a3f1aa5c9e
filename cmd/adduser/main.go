// main.go
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

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/digisamuday/samuday/internal/config"
	"github.com/digisamuday/samuday/internal/database"
	"github.com/digisamuday/samuday/internal/services"
)

func main() {
	var (
		envFilename string
		in          services.RegisterInput
	)
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.StringVar(&in.Username, "username", "", "login name (required)")
	flag.StringVar(&in.Password, "password", "", "password (required)")
	flag.StringVar(&in.Role, "role", "admin", "resident, admin or security")
	flag.StringVar(&in.PhoneNumber, "phone", "", "phone number (required)")
	flag.StringVar(&in.ApartmentNo, "apartment", "", "apartment number (required)")
	flag.StringVar(&in.Email, "email", "", "email address")
	flag.StringVar(&in.FirstName, "first-name", "", "first name")
	flag.StringVar(&in.LastName, "last-name", "", "last name")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `
Create a samuday account, typically the first admin.

Usage:

adduser [-f ENV_FILE_PATH] -username NAME -password PASS -phone PHONE -apartment APT [-role ROLE]

example
  adduser -f .env -username admin -password 's3cret!' -phone 5550100 -apartment OFFICE

`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	resident, err := services.Register(db, in, cfg.BcryptCost)
	if err != nil {
		database.Close(db)
		log.Printf("Failed to create account: %v", err)
		os.Exit(1)
	}

	log.Printf("Created %s account %q (id %d)", resident.Role, resident.Username, resident.ID)
}
