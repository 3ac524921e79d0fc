package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/database"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"
)

func main() {
	days := flag.Int("days", 90, "delete activity log entries older than this many days")
	flag.Parse()

	if *days <= 0 {
		log.Fatal("-days must be positive")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	cutoff := time.Now().AddDate(0, 0, -*days)
	removed, err := repository.NewActivityRepository(db).DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		log.Fatalf("cleanup activity_logs failed: %v", err)
	}

	res := db.Exec(`DELETE FROM refresh_tokens WHERE expires_at < ? OR revoked_at IS NOT NULL`, time.Now())
	if res.Error != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", res.Error)
	}

	log.Printf("cleanup completed: activity_logs=%d refresh_tokens=%d cutoff=%s", removed, res.RowsAffected, cutoff.Format(time.RFC3339))
}
