// Package qrcode renders booking pass QR codes.
package qrcode

import (
	"github.com/sankalpsthakur/astronova-sub007/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service. Size is the PNG edge length in
// pixels; errorCorrectionLevel is one of L, M, Q, H.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{size: size, errorCorrectionLevel: level}
}

// GenerateBookingQR renders the confirmation code as a PNG image.
func (s *qrcodeService) GenerateBookingQR(confirmationCode string) ([]byte, error) {
	if confirmationCode == "" {
		return nil, errors.New("confirmation code is required")
	}

	png, err := qrcode.Encode(confirmationCode, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode booking QR code")
	}

	return png, nil
}
