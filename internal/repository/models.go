package repository

import "github.com/amjooky/carwash-plus-sub001/internal/domain"

// Models lists everything AutoMigrate needs, in FK-safe order. The user
// table is declared through the repository's private row model so its
// column mapping stays in one place.
func Models() []any {
	return []any{
		&userModel{},
		&domain.RefreshToken{},
		&domain.Customer{},
		&domain.Staff{},
		&domain.Booking{},
		&domain.Payment{},
		&domain.Notification{},
		&domain.Setting{},
		&domain.ActivityLog{},
	}
}
