package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"hearth/config"
	"hearth/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	level := qrcode.Medium
	baseURL := ""
	if cfg.InviteQRCode != nil {
		if cfg.InviteQRCode.Size > 0 {
			size = cfg.InviteQRCode.Size
		}
		// Set error correction level
		switch cfg.InviteQRCode.ErrorCorrectionLevel {
		case "L":
			level = qrcode.Low
		case "M":
			level = qrcode.Medium
		case "Q":
			level = qrcode.High
		case "H":
			level = qrcode.Highest
		}
		baseURL = cfg.InviteQRCode.BaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateInvitationQR generates a PNG QR code encoding the invitation acceptance URL.
func (s *qrcodeService) GenerateInvitationQR(token string) ([]byte, error) {
	qrCode, err := qrcode.New(s.InvitationURL(token), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// InvitationURL returns the acceptance URL encoded into the QR code.
func (s *qrcodeService) InvitationURL(token string) string {
	base := strings.TrimSuffix(s.baseURL, "/")
	return fmt.Sprintf("%s/households/invitations/accept?token=%s", base, token)
}
