package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/database"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Operator tool for resetting a locked-out account. Revokes all open
// sessions so the old credentials stop working immediately.
func main() {
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "new password (min 8 chars)")
	flag.Parse()

	*email = strings.ToLower(strings.TrimSpace(*email))
	if *email == "" || len(*password) < 8 {
		log.Fatal("usage: reset_password -email user@example.com -password <min 8 chars>")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)

	user, err := users.GetByEmail(ctx, *email)
	if err != nil {
		log.Fatalf("lookup failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}
	if err := users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		log.Fatalf("update failed: %v", err)
	}

	res := db.Exec(`UPDATE refresh_tokens SET revoked_at = ? WHERE user_id = ? AND revoked_at IS NULL`, time.Now(), user.ID)
	if res.Error != nil {
		log.Fatalf("session revoke failed: %v", res.Error)
	}

	log.Printf("password reset for %s, sessions revoked: %d", *email, res.RowsAffected)
}
