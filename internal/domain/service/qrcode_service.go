package service

// QRCodeService defines the interface for generating booking pass QR codes.
type QRCodeService interface {
	// GenerateBookingQR renders the confirmation code as a PNG QR image.
	GenerateBookingQR(confirmationCode string) ([]byte, error)
}
