package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"mangosense/config"
	"mangosense/pkg/database"
)

const usage = `
MangoSense - Database CLI Tool

Usage:
  migrate [command]

Commands:
  up          Apply all pending migrations
  down        Roll back the most recent migration

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go down
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.LoadConfig()
	ctx := context.Background()

	switch flag.Arg(0) {
	case "up":
		if err := database.RunMigrations(ctx, cfg); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migrations applied")
	case "down":
		if err := database.RollbackMigration(ctx, cfg); err != nil {
			log.Fatalf("Rollback failed: %v", err)
		}
		log.Println("Rolled back one migration")
	default:
		flag.Usage()
		os.Exit(1)
	}
}
