package domain

import "time"

type RefreshToken struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	TokenHash   string     `json:"-"`
	JTI         string     `json:"jti" gorm:"column:jti"`
	FamilyID    string     `json:"family_id"`
	RotatedFrom *int64     `json:"rotated_from,omitempty"`
	ExpiresAt   time.Time  `json:"expires_at"`
	UsedAt      *time.Time `json:"used_at,omitempty"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
