package service

import "github.com/google/uuid"

// QRCodeService generates and parses ticket QR codes for approved registrations.
type QRCodeService interface {
	// GenerateTicketQR renders a PNG QR code encoding the registration id.
	GenerateTicketQR(registrationID uuid.UUID) ([]byte, error)

	// ParseTicketQR extracts the registration id from scanned QR payload data.
	ParseTicketQR(qrData string) (uuid.UUID, error)
}
