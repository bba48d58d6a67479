package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/amanahq/amana-backend/cmd"
)

func main() {
	// Local development convenience; missing file is fine.
	_ = godotenv.Load()

	command := "server"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	var err error
	switch command {
	case "server":
		err = cmd.RunServer()
	case "migrations":
		err = cmd.RunMigrations()
	default:
		log.Fatalf("unknown command %q (expected server or migrations)", command)
	}

	if err != nil {
		os.Exit(1)
	}
}
