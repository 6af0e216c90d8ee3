package wire

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/healthrecords/internal/internalrecord"
)

func f64(v float64) *float64 { return &v }

func sampleRoute() []internalrecord.Location {
	return []internalrecord.Location{
		{TimeMillis: 1714860000000, Latitude: 52.52, Longitude: 13.405},
		{TimeMillis: 1714860001000, Latitude: 52.5201, Longitude: 13.4051, HorizontalAccuracy: f64(3.5), Altitude: f64(34)},
		{TimeMillis: 1714860002000, Latitude: -33.86, Longitude: 151.2, HorizontalAccuracy: f64(1), VerticalAccuracy: f64(2), Altitude: f64(-5)},
	}
}

func TestEncodeDecodeRoute(t *testing.T) {
	route := sampleRoute()
	data, err := EncodeRoute(route)
	require.NoError(t, err)
	// count + three points of 27 bytes plus 8 per present optional
	assert.Len(t, data, 4+3*pointSize+5*8)

	got, err := DecodeRoute(data)
	require.NoError(t, err)
	assert.Equal(t, route, got)
}

func TestEncodeRouteLayout(t *testing.T) {
	data, err := EncodeRoute([]internalrecord.Location{
		{TimeMillis: 7, Latitude: 1.5, Longitude: -2.25, VerticalAccuracy: f64(9)},
	})
	require.NoError(t, err)

	var want bytes.Buffer
	_ = binary.Write(&want, binary.LittleEndian, int32(1))
	_ = binary.Write(&want, binary.LittleEndian, int64(7))
	_ = binary.Write(&want, binary.LittleEndian, 1.5)
	_ = binary.Write(&want, binary.LittleEndian, -2.25)
	want.Write([]byte{0, 1})
	_ = binary.Write(&want, binary.LittleEndian, 9.0)
	want.WriteByte(0)
	assert.Equal(t, want.Bytes(), data)
}

func TestEncodeDecodeEmptyRoute(t *testing.T) {
	data, err := EncodeRoute(nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, data)

	got, err := DecodeRoute(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeRouteRejectsBadFlag(t *testing.T) {
	data, err := EncodeRoute(sampleRoute()[:1])
	require.NoError(t, err)
	// first flag byte follows count, millis, lat and lon
	data[4+24] = 2
	_, err = DecodeRoute(data)
	require.ErrorIs(t, err, ErrInvalidFlag)
}

func TestDecodeRouteRejectsMalformedInput(t *testing.T) {
	data, err := EncodeRoute(sampleRoute())
	require.NoError(t, err)

	_, err = DecodeRoute(data[:len(data)-3])
	assert.Error(t, err)

	_, err = DecodeRoute(append(bytes.Clone(data), 0))
	require.ErrorIs(t, err, ErrTrailingBytes)

	negative := make([]byte, 4)
	binary.LittleEndian.PutUint32(negative, math.MaxUint32)
	_, err = DecodeRoute(negative)
	require.ErrorIs(t, err, ErrNegativeCount)

	_, err = DecodeRoute([]byte{1, 0})
	assert.Error(t, err)
}

func TestDecodeRouteHugeCountFailsWithoutAllocating(t *testing.T) {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, math.MaxInt32)
	_, err := DecodeRoute(data)
	assert.Error(t, err)
}
