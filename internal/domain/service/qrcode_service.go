package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// RecordLink returns the URL a record's QR code points to
	RecordLink(recordID string) string

	// GenerateRecordQR generates a PNG QR code linking to an address record
	GenerateRecordQR(recordID string) ([]byte, error)
}
