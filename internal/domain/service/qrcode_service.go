package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateInvitationQR generates a PNG QR code encoding the invitation
	// acceptance URL for the given opaque token.
	GenerateInvitationQR(token string) ([]byte, error)

	// InvitationURL returns the acceptance URL encoded into the QR code.
	InvitationURL(token string) string
}
