package services

import "github.com/abrezinsky/reviewwheel/internal/errors"

// Service errors
var (
	ErrInvalidQRSize = errors.InvalidInputf("size must be between %d and %d", MinQRSize, MaxQRSize)
)
