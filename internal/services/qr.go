package services

import (
	"github.com/skip2/go-qrcode"
)

// QR image size bounds in pixels
const (
	MinQRSize     = 64
	MaxQRSize     = 1024
	DefaultQRSize = 256
)

// ReviewQRImage renders the review URL as a PNG QR code so customers can
// open it on their own phone.
func (s *RouletteService) ReviewQRImage(size int) ([]byte, error) {
	if size == 0 {
		size = DefaultQRSize
	}
	if size < MinQRSize || size > MaxQRSize {
		return nil, ErrInvalidQRSize
	}
	return qrcode.Encode(s.reviewURL, qrcode.Medium, size)
}
