package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"files-manager/internal/config"
	"files-manager/internal/repository/postgres"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Println("=== Setting Up Database ===")

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	schema, err := os.ReadFile("database/schema.sql")
	if err != nil {
		log.Fatalf("Failed to read schema file: %v", err)
	}

	if _, err := db.Pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("Failed to execute schema: %v", err)
	}

	for _, table := range []string{"users", "files"} {
		var exists bool
		query := `SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)`
		if err := db.Pool.QueryRow(context.Background(), query, table).Scan(&exists); err != nil || !exists {
			log.Fatalf("Table %q not created: %v", table, err)
		}
		fmt.Printf("Table %q ready\n", table)
	}
}
