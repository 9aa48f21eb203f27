package qrtoken

import (
	"Punto-Donativo-Backend/domain"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
)

const payloadPrefix = "donation:"

type (
	// QRTokenService turns a donation id into a scannable pickup token.
	// Issuance is a pure offline transformation: a fresh image may be
	// generated on every call, but the encoded payload always resolves
	// back to exactly the originating donation id.
	QRTokenService interface {
		Issue(donationID uint) (string, error)
		ResolvePayload(payload string) (uint, error)
	}

	qrTokenService struct {
		size int
	}
)

func NewQRTokenService() QRTokenService {
	return &qrTokenService{size: 256}
}

// Issue encodes the donation id into a QR code PNG and returns the image
// bytes as a base64 string, ready for JSON transport and client rendering.
func (s *qrTokenService) Issue(donationID uint) (string, error) {
	if donationID == 0 {
		return "", domain.ErrInvalidDonationID
	}

	payload := payloadPrefix + strconv.FormatUint(uint64(donationID), 10)
	png, err := qrcode.Encode(payload, qrcode.Medium, s.size)
	if err != nil {
		return "", fmt.Errorf("failed to encode qr code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

// ResolvePayload maps a scanned payload back to the donation id it was
// issued for.
func (s *qrTokenService) ResolvePayload(payload string) (uint, error) {
	if !strings.HasPrefix(payload, payloadPrefix) {
		return 0, domain.ErrInvalidTokenPayload
	}

	id, err := strconv.ParseUint(strings.TrimPrefix(payload, payloadPrefix), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidTokenPayload
	}

	return uint(id), nil
}
