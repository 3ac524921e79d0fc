package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/amjooky/carwash-plus-sub001/internal/config"
	"github.com/amjooky/carwash-plus-sub001/internal/database"
	"github.com/amjooky/carwash-plus-sub001/internal/domain"
	"github.com/amjooky/carwash-plus-sub001/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM activity_logs")
	db.Exec("DELETE FROM notifications")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM settings")
	db.Exec("DELETE FROM staff")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	superHash, _ := bcrypt.GenerateFromPassword([]byte("super123"), bcrypt.DefaultCost)
	superAdmin := &domain.User{
		Email:        "super@carwashplus.io",
		Username:     "superadmin",
		PasswordHash: string(superHash),
		FirstName:    "Sara",
		LastName:     "Okafor",
		Role:         domain.RoleSuperAdmin,
		Status:       domain.UserActive,
	}
	if err := userRepo.Create(ctx, superAdmin); err != nil {
		log.Fatal("seed super admin failed:", err)
	}
	log.Println("Super admin created: super@carwashplus.io / super123")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:        "admin@carwashplus.io",
		Username:     "admin",
		PasswordHash: string(adminHash),
		FirstName:    "Marcus",
		LastName:     "Lee",
		Role:         domain.RoleAdmin,
		Status:       domain.UserActive,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal("seed admin failed:", err)
	}
	log.Println("Admin created: admin@carwashplus.io / admin123")

	userEmails := []string{"dana@gmail.com", "felix@outlook.com", "imani@yahoo.com"}
	for i, email := range userEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
		u := &domain.User{
			Email:        email,
			Username:     fmt.Sprintf("user%d", i+1),
			PasswordHash: string(hash),
			FirstName:    fmt.Sprintf("User%d", i+1),
			LastName:     "Demo",
			Phone:        fmt.Sprintf("+1 555 010 00%02d", i+11),
			Role:         domain.RoleUser,
			Status:       domain.UserActive,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatal("seed user failed:", err)
		}
	}

	// ================== SETTINGS ==================
	log.Println("Creating default settings...")

	defaults := []domain.Setting{
		{Key: "business.name", Value: "CarWash Plus", Category: "business", IsPublic: true},
		{Key: "business.hours", Value: "08:00-20:00", Category: "business", IsPublic: true},
		{Key: "payments.default_currency", Value: "usd", Category: "payments", IsPublic: false},
		{Key: "notifications.broadcast_enabled", Value: "true", Category: "notifications", IsPublic: false},
		{Key: "logs.retention_days", Value: "90", Category: "logs", IsPublic: false},
	}
	for i := range defaults {
		if err := settingRepo.Create(ctx, &defaults[i]); err != nil {
			log.Fatal("seed setting failed:", err)
		}
	}

	// ================== CUSTOMERS / STAFF ==================
	log.Println("Creating customers and staff...")

	customers := []domain.Customer{
		{FirstName: "Alice", LastName: "Romero", Email: "alice.romero@gmail.com", Phone: "+1 555 020 0001"},
		{FirstName: "Ben", LastName: "Koch", Email: "ben.koch@gmail.com", Phone: "+1 555 020 0002"},
		{FirstName: "Carla", LastName: "Singh", Phone: "+1 555 020 0003"},
	}
	for i := range customers {
		if err := customerRepo.Create(ctx, &customers[i]); err != nil {
			log.Fatal("seed customer failed:", err)
		}
	}

	team := []domain.Staff{
		{FirstName: "Diego", LastName: "Alvarez", Email: "diego@carwashplus.io", Position: "Wash Technician", Active: true},
		{FirstName: "Elena", LastName: "Petrova", Email: "elena@carwashplus.io", Position: "Shift Lead", Active: true},
		{FirstName: "Frank", LastName: "Mills", Position: "Detailer", Active: false},
	}
	for i := range team {
		if err := staffRepo.Create(ctx, &team[i]); err != nil {
			log.Fatal("seed staff failed:", err)
		}
	}

	// ================== BOOKINGS / PAYMENTS ==================
	log.Println("Creating bookings and payments...")

	now := time.Now()
	bookings := []domain.Booking{
		{CustomerID: customers[0].ID, ServiceName: "Full Detail", ScheduledAt: now.Add(-48 * time.Hour), Status: domain.BookingCompleted},
		{CustomerID: customers[1].ID, ServiceName: "Express Wash", ScheduledAt: now.Add(-2 * time.Hour), Status: domain.BookingCompleted},
		{CustomerID: customers[2].ID, ServiceName: "Interior Clean", ScheduledAt: now.Add(24 * time.Hour), Status: domain.BookingScheduled},
	}
	for i := range bookings {
		if err := bookingRepo.Create(ctx, &bookings[i]); err != nil {
			log.Fatal("seed booking failed:", err)
		}
	}

	txID := "txn_seed_0001"
	payments := []domain.Payment{
		{BookingID: bookings[0].ID, Amount: 89.99, Currency: "usd", Status: domain.PaymentCompleted, Method: domain.MethodCard, TransactionID: &txID},
		{BookingID: bookings[1].ID, Amount: 19.50, Currency: "usd", Status: domain.PaymentPending, Method: domain.MethodCash},
	}
	for i := range payments {
		if err := paymentRepo.Create(ctx, &payments[i]); err != nil {
			log.Fatal("seed payment failed:", err)
		}
	}

	log.Println("Seed complete.")
}
