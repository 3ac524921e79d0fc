package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrAccountInactive      = errors.New("account is not active")
	ErrInvalidRefreshToken  = errors.New("invalid refresh token")
	ErrRefreshTokenReused   = errors.New("refresh token reuse detected")
	ErrWrongCurrentPassword = errors.New("current password is incorrect")
)
