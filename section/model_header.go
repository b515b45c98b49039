package section

import (
	"fmt"

	"github.com/varlab/princomp/errs"
)

// ModelHeader is the fixed-size header at the start of a model blob.
//
// Layout (40 bytes):
//
//	0-1   flag options (always little-endian)
//	2     method enum
//	3     compression enum
//	4-7   feature count p
//	8-11  component count k
//	12-15 observation count n of the fitting run (informational)
//	16-19 payload offset from the start of the blob
//	20-23 payload size in the blob (compressed size)
//	24-31 xxHash64 checksum of the uncompressed payload
//	32-39 reserved, must be zero
type ModelHeader struct {
	// FeatureCount is the input dimensionality p.
	FeatureCount uint32
	// ComponentCount is the number of stored components k.
	ComponentCount uint32
	// ObservationCount is the row count n the model was fitted on.
	ObservationCount uint32
	// PayloadOffset is the byte offset of the payload section.
	PayloadOffset uint32
	// PayloadSize is the on-blob (compressed) payload size in bytes.
	PayloadSize uint32
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64

	// Flag is the packed flag field at byte offset 0-3.
	Flag ModelFlag
}

// NewModelHeader creates a header with default flags. The counts, offsets
// and checksum are filled in by the encoder's Finish step.
func NewModelHeader() *ModelHeader {
	return &ModelHeader{
		Flag:          NewModelFlag(),
		PayloadOffset: HeaderSize,
	}
}

// Parse parses the header from a byte slice of exactly HeaderSize bytes.
func (h *ModelHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("got %d bytes, want %d: %w", len(data), HeaderSize, errs.ErrInvalidHeaderSize)
	}

	// The options word is always little-endian so the decoder can learn the
	// endianness of everything else.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Method = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.FeatureCount = engine.Uint32(data[4:8])
	h.ComponentCount = engine.Uint32(data[8:12])
	h.ObservationCount = engine.Uint32(data[12:16])
	h.PayloadOffset = engine.Uint32(data[16:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return h.validateCounts()
}

// Bytes serializes the header into a fresh HeaderSize byte slice.
func (h *ModelHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Method
	b[3] = h.Flag.Compression

	engine := h.Flag.GetEndianEngine()
	engine.PutUint32(b[4:8], h.FeatureCount)
	engine.PutUint32(b[8:12], h.ComponentCount)
	engine.PutUint32(b[12:16], h.ObservationCount)
	engine.PutUint32(b[16:20], h.PayloadOffset)
	engine.PutUint32(b[20:24], h.PayloadSize)
	engine.PutUint64(b[24:32], h.Checksum)
	// Bytes 32-39 stay zero.

	return b
}

// validateCounts rejects headers whose shape counts cannot describe a model.
func (h *ModelHeader) validateCounts() error {
	if h.FeatureCount == 0 {
		return fmt.Errorf("zero feature count: %w", errs.ErrInvalidHeaderFlags)
	}
	if h.ComponentCount == 0 || h.ComponentCount > h.FeatureCount {
		return fmt.Errorf("component count %d outside [1, %d]: %w",
			h.ComponentCount, h.FeatureCount, errs.ErrInvalidHeaderFlags)
	}
	if h.PayloadOffset < HeaderSize {
		return fmt.Errorf("payload offset %d inside header: %w", h.PayloadOffset, errs.ErrInvalidHeaderFlags)
	}

	return nil
}

// ParseModelHeader parses a ModelHeader from the start of data.
func ParseModelHeader(data []byte) (ModelHeader, error) {
	if len(data) < HeaderSize {
		return ModelHeader{}, fmt.Errorf("got %d bytes, want at least %d: %w",
			len(data), HeaderSize, errs.ErrInvalidHeaderSize)
	}

	var header ModelHeader
	if err := header.Parse(data[:HeaderSize]); err != nil {
		return ModelHeader{}, err
	}

	return header, nil
}
