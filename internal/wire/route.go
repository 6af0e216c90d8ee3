// Package wire holds the binary encoding of exercise routes.
package wire

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"example.com/healthrecords/internal/internalrecord"
)

var byteOrder = binary.LittleEndian

var (
	// ErrInvalidFlag is returned when an optional-field marker is neither 0 nor 1.
	ErrInvalidFlag = errors.New("wire: invalid presence flag")
	// ErrNegativeCount is returned for a route whose point count is negative.
	ErrNegativeCount = errors.New("wire: negative point count")
	// ErrTrailingBytes is returned when input continues past the last point.
	ErrTrailingBytes = errors.New("wire: trailing bytes after route")
)

// pointSize is the smallest encoded point: time, latitude, longitude and three
// absent flags.
const pointSize = 8 + 8 + 8 + 3

// EncodeRoute writes a route as an int32 point count followed by each point.
// Format per point: millis(int64) lat(float64) lon(float64) then, for
// horizontal accuracy, vertical accuracy and altitude, a flag byte and the
// float64 when the flag is 1.
func EncodeRoute(route []internalrecord.Location) ([]byte, error) {
	if len(route) > math.MaxInt32 {
		return nil, fmt.Errorf("wire: route too long: %d points", len(route))
	}
	var buf bytes.Buffer
	buf.Grow(4 + len(route)*pointSize)
	if err := WriteRoute(&buf, route); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteRoute streams the encoding produced by EncodeRoute to w.
func WriteRoute(w io.Writer, route []internalrecord.Location) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, byteOrder, int32(len(route))); err != nil {
		return err
	}
	for _, loc := range route {
		if err := writeLocation(bw, loc); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeLocation(w io.Writer, loc internalrecord.Location) error {
	if err := binary.Write(w, byteOrder, loc.TimeMillis); err != nil {
		return err
	}
	if err := binary.Write(w, byteOrder, loc.Latitude); err != nil {
		return err
	}
	if err := binary.Write(w, byteOrder, loc.Longitude); err != nil {
		return err
	}
	for _, opt := range []*float64{loc.HorizontalAccuracy, loc.VerticalAccuracy, loc.Altitude} {
		if err := writeOptional(w, opt); err != nil {
			return err
		}
	}
	return nil
}

func writeOptional(w io.Writer, v *float64) error {
	if v == nil {
		return binary.Write(w, byteOrder, uint8(0))
	}
	if err := binary.Write(w, byteOrder, uint8(1)); err != nil {
		return err
	}
	return binary.Write(w, byteOrder, *v)
}

// DecodeRoute parses bytes produced by EncodeRoute. The whole input must be
// consumed.
func DecodeRoute(data []byte) ([]internalrecord.Location, error) {
	r := bytes.NewReader(data)
	route, err := ReadRoute(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d", ErrTrailingBytes, r.Len())
	}
	return route, nil
}

// ReadRoute reads a single encoded route from r.
func ReadRoute(r io.Reader) ([]internalrecord.Location, error) {
	var count int32
	if err := binary.Read(r, byteOrder, &count); err != nil {
		return nil, fmt.Errorf("wire: read count: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	// count is untrusted; grow as points arrive instead of preallocating it all
	route := make([]internalrecord.Location, 0, min(int(count), 1024))
	for i := int32(0); i < count; i++ {
		loc, err := readLocation(r)
		if err != nil {
			return nil, fmt.Errorf("wire: point %d: %w", i, err)
		}
		route = append(route, loc)
	}
	return route, nil
}

func readLocation(r io.Reader) (internalrecord.Location, error) {
	var loc internalrecord.Location
	if err := binary.Read(r, byteOrder, &loc.TimeMillis); err != nil {
		return loc, err
	}
	if err := binary.Read(r, byteOrder, &loc.Latitude); err != nil {
		return loc, err
	}
	if err := binary.Read(r, byteOrder, &loc.Longitude); err != nil {
		return loc, err
	}
	var err error
	if loc.HorizontalAccuracy, err = readOptional(r); err != nil {
		return loc, err
	}
	if loc.VerticalAccuracy, err = readOptional(r); err != nil {
		return loc, err
	}
	if loc.Altitude, err = readOptional(r); err != nil {
		return loc, err
	}
	return loc, nil
}

func readOptional(r io.Reader) (*float64, error) {
	var flag uint8
	if err := binary.Read(r, byteOrder, &flag); err != nil {
		return nil, err
	}
	switch flag {
	case 0:
		return nil, nil
	case 1:
		var v float64
		if err := binary.Read(r, byteOrder, &v); err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, fmt.Errorf("%w: %#x", ErrInvalidFlag, flag)
	}
}
