package qrtoken

import (
	"Punto-Donativo-Backend/domain"
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestIssue_ReturnsBase64PNG(t *testing.T) {
	svc := NewQRTokenService()

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	raw, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err, "token must be text-safe for JSON transport")
	assert.True(t, bytes.HasPrefix(raw, pngMagic), "decoded token should be a PNG image")
}

func TestIssue_RejectsZeroID(t *testing.T) {
	svc := NewQRTokenService()

	_, err := svc.Issue(0)
	require.ErrorIs(t, err, domain.ErrInvalidDonationID)
}

func TestIssue_FreshImagesResolveToSameDonation(t *testing.T) {
	svc := NewQRTokenService()

	first, err := svc.Issue(7)
	require.NoError(t, err)
	second, err := svc.Issue(7)
	require.NoError(t, err)

	// Regeneration is allowed; both tokens carry the same payload.
	assert.Equal(t, first, second)

	id, err := svc.ResolvePayload("donation:7")
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestResolvePayload_RejectsForeignPayloads(t *testing.T) {
	svc := NewQRTokenService()

	for _, payload := range []string{"", "donation:", "donation:abc", "donation:0", "ticket:7"} {
		_, err := svc.ResolvePayload(payload)
		assert.ErrorIs(t, err, domain.ErrInvalidTokenPayload, "payload %q", payload)
	}
}
