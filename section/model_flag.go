package section

import (
	"fmt"

	"github.com/varlab/princomp/endian"
	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/format"
)

// ModelFlag is the packed flag field at the start of the model header.
type ModelFlag struct {
	// Options is a packed field:
	// Bit 0 is the endianness flag, 0 little-endian, 1 big-endian.
	// Bit 1 indicates a feature-ID section in the payload.
	// Bits 2-3 are reserved and must be zero.
	// Bits 4-15 hold the format magic number.
	Options uint16

	// Method is the decomposition backend enum (format.MethodType).
	Method uint8
	// Compression is the payload compression enum (format.CompressionType).
	Compression uint8
}

var validMethods = map[uint8]struct{}{
	uint8(format.MethodEigen): {},
	uint8(format.MethodSVD):   {},
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewModelFlag creates a flag with default settings: little-endian, no
// feature IDs, Eigen method, no compression.
func NewModelFlag() ModelFlag {
	return ModelFlag{
		Options:     MagicModelV1Opt,
		Method:      uint8(format.MethodEigen),
		Compression: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether the blob body is little-endian.
func (f ModelFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian marks the blob body as little-endian.
func (f *ModelFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian marks the blob body as big-endian.
func (f *ModelFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the engine matching the endianness flag.
func (f ModelFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// HasFeatureIDs returns whether the payload carries a feature-ID section.
func (f ModelFlag) HasFeatureIDs() bool {
	return (f.Options & FeatureIDsMask) != 0
}

// SetHasFeatureIDs enables or disables the feature-ID section bit.
func (f *ModelFlag) SetHasFeatureIDs(enabled bool) {
	if enabled {
		f.Options |= FeatureIDsMask
	} else {
		f.Options &^= FeatureIDsMask
	}
}

// MethodType returns the decomposition method enum.
func (f ModelFlag) MethodType() format.MethodType {
	return format.MethodType(f.Method)
}

// SetMethod stores the decomposition method enum.
func (f *ModelFlag) SetMethod(m format.MethodType) {
	f.Method = uint8(m)
}

// CompressionType returns the payload compression enum.
func (f ModelFlag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression stores the payload compression enum.
func (f *ModelFlag) SetCompression(c format.CompressionType) {
	f.Compression = uint8(c)
}

// Validate checks the magic number, reserved bits and enum ranges.
func (f ModelFlag) Validate() error {
	if f.Options&MagicNumberMask != MagicModelV1Opt {
		return fmt.Errorf("options 0x%04X: %w", f.Options, errs.ErrInvalidMagicNumber)
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("reserved bits set in options 0x%04X: %w", f.Options, errs.ErrInvalidHeaderFlags)
	}
	if _, ok := validMethods[f.Method]; !ok {
		return fmt.Errorf("method 0x%02X: %w", f.Method, errs.ErrInvalidHeaderFlags)
	}
	if _, ok := validCompressions[f.Compression]; !ok {
		return fmt.Errorf("compression 0x%02X: %w", f.Compression, errs.ErrInvalidHeaderFlags)
	}

	return nil
}
