package domain

import "time"

// Setting is an admin-configurable key/value pair. The key is the natural
// identifier, unique across the table.
type Setting struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key" gorm:"uniqueIndex;size:100;not null"`
	Value     string    `json:"value"`
	Category  string    `json:"category"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
