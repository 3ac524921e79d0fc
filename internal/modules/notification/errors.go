package notification

import "errors"

var ErrInvalidType = errors.New("invalid notification type")
