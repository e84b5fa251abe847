// Command migrate applies the schema for the backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"tickertalk/internal/config"
	"tickertalk/internal/database"
	"tickertalk/internal/seed"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	withReference := flag.Bool("reference", true, "Upsert reference symbols and sentiments after migrating")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}
	log.Println("automigrations applied")

	if *withReference {
		if err := seed.Reference(ctx, db); err != nil {
			return fmt.Errorf("reference seeding failed: %w", err)
		}
		log.Println("reference data applied")
	}
	return nil
}
