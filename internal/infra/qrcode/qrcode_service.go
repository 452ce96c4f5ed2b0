package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"doorstep/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultBaseURL = "doorstep://addresses"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. Codes link to
// baseURL followed by the record id.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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

	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// RecordLink returns the share link of a record.
func (s *qrcodeService) RecordLink(recordID string) string {
	return s.baseURL + "/" + url.PathEscape(recordID)
}

// GenerateRecordQR encodes the record link as a PNG.
func (s *qrcodeService) GenerateRecordQR(recordID string) ([]byte, error) {
	if recordID == "" {
		return nil, fmt.Errorf("record id is required")
	}

	qrCode, err := qrcode.New(s.RecordLink(recordID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
