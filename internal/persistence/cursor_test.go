package persistence

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/healthrecords/internal/domain"
)

func TestCursorRoundTrip(t *testing.T) {
	c := &domain.Cursor{StartTime: time.Date(2024, 5, 4, 22, 0, 0, 123456789, time.UTC), ID: "5b2f0c1e-6f35-4a57-9ad1-0f8d64c2b4f1"}
	token := EncodeCursor(c)
	assert.NotContains(t, token, "=")

	got, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCursorEmpty(t *testing.T) {
	assert.Equal(t, "", EncodeCursor(nil))
	got, err := DecodeCursor("  ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDecodeCursorRejectsGarbage(t *testing.T) {
	for _, token := range []string{
		"!!!",
		base64.RawURLEncoding.EncodeToString([]byte("no-separator")),
		base64.RawURLEncoding.EncodeToString([]byte("yesterday|id")),
		base64.RawURLEncoding.EncodeToString([]byte("2024-05-04T22:00:00Z|")),
		base64.RawURLEncoding.EncodeToString([]byte("2024-05-04T22:00:00Z|b1c2")),
		base64.RawURLEncoding.EncodeToString([]byte("2024-05-04T22:00:00Z|'; drop table records")),
	} {
		_, err := DecodeCursor(token)
		require.ErrorIs(t, err, ErrInvalidCursor, token)
	}
}
