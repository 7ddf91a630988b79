package main

import (
	"context"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/shiftwise/attendance-backend-go/internal/config"
	"github.com/shiftwise/attendance-backend-go/internal/pkg/database"
	"github.com/shiftwise/attendance-backend-go/internal/repository/postgresql"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer db.Close()

	migration, err := os.ReadFile("migrations/001_initial_schema.sql")
	if err != nil {
		log.Fatalf("Error reading migration file: %v", err)
	}

	// All or nothing, a failed migration leaves the schema untouched
	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, string(migration))
		return err
	})
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Println("Migration completed successfully")
}
