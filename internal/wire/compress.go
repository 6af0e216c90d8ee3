package wire

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"example.com/healthrecords/internal/internalrecord"
)

// Compressor frames encoded routes in zstd for storage. It is safe for
// concurrent use.
type Compressor struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

// NewCompressor builds a Compressor with a stateless encoder and decoder.
func NewCompressor() (*Compressor, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &Compressor{encoder: encoder, decoder: decoder}, nil
}

// CompressRoute encodes route and compresses the result. An empty route
// compresses to nil so callers can store SQL NULL.
func (c *Compressor) CompressRoute(route []internalrecord.Location) ([]byte, error) {
	if len(route) == 0 {
		return nil, nil
	}
	raw, err := EncodeRoute(route)
	if err != nil {
		return nil, err
	}
	return c.encoder.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

// DecompressRoute reverses CompressRoute.
func (c *Compressor) DecompressRoute(blob []byte) ([]internalrecord.Location, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	raw, err := c.decoder.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("wire: decompress route: %w", err)
	}
	return DecodeRoute(raw)
}
