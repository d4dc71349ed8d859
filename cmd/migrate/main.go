package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"zentube/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

const usage = "Usage: go run ./cmd/migrate [up|drop|import-sqlite [path]]"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "up":
		if _, err := conn.Exec(ctx, database.KVSchema); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ kv_store created")

	case "drop":
		if _, err := conn.Exec(ctx, database.KVDropSchema); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("✅ kv_store dropped")

	case "import-sqlite":
		path := os.Getenv("SQLITE_PATH")
		if len(os.Args) > 2 {
			path = os.Args[2]
		}
		if path == "" {
			path = database.DefaultSQLitePath()
		}
		n, err := importSQLite(ctx, conn, path)
		if err != nil {
			log.Fatalf("Failed to import %s: %v", path, err)
		}
		fmt.Printf("✅ Imported %d keys from %s\n", n, path)

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println(usage)
		os.Exit(1)
	}
}

// importSQLite copies every key of a local store into kv_store, overwriting
// existing values
func importSQLite(ctx context.Context, conn *pgx.Conn, path string) (int, error) {
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("sqlite database not found: %w", err)
	}

	src, err := database.NewSQLiteDB(ctx, path)
	if err != nil {
		return 0, err
	}
	defer src.Close()

	if _, err := conn.Exec(ctx, database.KVSchema); err != nil {
		return 0, fmt.Errorf("failed to create kv_store: %w", err)
	}

	rows, err := src.DB.QueryContext(ctx, `SELECT key, value FROM kv_store`)
	if err != nil {
		return 0, fmt.Errorf("failed to read sqlite kv_store: %w", err)
	}
	defer rows.Close()

	batch := &pgx.Batch{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return 0, fmt.Errorf("failed to scan row: %w", err)
		}
		batch.Queue(`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`, key, value)
		fmt.Printf("  Queued: %s\n", key)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	if batch.Len() == 0 {
		return 0, nil
	}
	if err := conn.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("failed to write kv_store: %w", err)
	}
	return batch.Len(), nil
}
