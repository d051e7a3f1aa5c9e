package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/digisamuday/samuday/internal/config"
	"github.com/digisamuday/samuday/internal/testhelpers"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")

	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Start a database testcontainer for samuday and print the environment that reaches it.
DB_TYPE selects mariadb (default) or postgres; DB_IMAGE and POSTGRES_IMAGE override the images.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}
	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment variables: %v\n", err)
	}

	dbType := os.Getenv("DB_TYPE")
	if dbType == "" || dbType == "sqlite" || dbType == "sqlite-pure" {
		dbType = "mariadb"
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	container, err := testhelpers.StartDatabaseContainer(nil, dbType)
	if err != nil {
		log.Fatalf("Failed to create test container: %v\n", err)
	}

	cfg := container.Config
	fmt.Printf("DB_TYPE=%s\nDB_HOST=%s\nDB_PORT=%s\nDB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n",
		cfg.DBType, cfg.DBHost, cfg.DBPort, cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating test container...\n", sig)
	container.Terminate(nil)
}
