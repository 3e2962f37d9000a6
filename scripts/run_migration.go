package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/ridwanfathin/invoice-builder-service/internal/database"
)

func main() {
	dir := flag.String("dir", "scripts/migrations", "directory of .sql migration files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment variables.")
	}

	dbURL := os.Getenv("POSTGRES_DB_URL")
	if dbURL == "" {
		log.Fatalf("POSTGRES_DB_URL environment variable not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, dbURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer db.Close()

	files, err := filepath.Glob(filepath.Join(*dir, "*.sql"))
	if err != nil {
		log.Fatalf("Unable to list migrations: %v", err)
	}
	sort.Strings(files)

	for _, file := range files {
		migrationSQL, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("Unable to read migration file %s: %v", file, err)
		}

		err = db.ExecuteTransaction(ctx, func(tx pgx.Tx) error {
			_, err := tx.Exec(ctx, string(migrationSQL))
			return err
		})
		if err != nil {
			log.Fatalf("Failed to execute migration %s: %v", file, err)
		}
		fmt.Printf("Applied %s\n", filepath.Base(file))
	}

	fmt.Println("Migration successfully executed!")
}
