package settings

import "errors"

var (
	ErrKeyExists  = errors.New("settings key already exists")
	ErrInvalidKey = errors.New("invalid settings key")
)
