package blob

import (
	"fmt"
	"math"

	"github.com/varlab/princomp/compress"
	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/format"
	"github.com/varlab/princomp/internal/hash"
	"github.com/varlab/princomp/internal/options"
	"github.com/varlab/princomp/internal/pool"
	"github.com/varlab/princomp/pca"
	"github.com/varlab/princomp/section"
)

// ModelEncoder serializes fitted models into the blob format. An encoder is
// configured once and can encode any number of models; it is safe for
// concurrent use.
type ModelEncoder struct {
	compression format.CompressionType
	littleEnd   bool
	codec       compress.Codec
}

// EncoderOption configures a ModelEncoder.
type EncoderOption = options.Option[*ModelEncoder]

// WithCompression selects the payload compression codec.
// The default is format.CompressionNone.
func WithCompression(c format.CompressionType) EncoderOption {
	return options.New(func(e *ModelEncoder) error {
		if _, err := compress.GetCodec(c); err != nil {
			return err
		}
		e.compression = c

		return nil
	})
}

// WithLittleEndian encodes payload values in little-endian byte order.
// This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *ModelEncoder) {
		e.littleEnd = true
	})
}

// WithBigEndian encodes payload values in big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *ModelEncoder) {
		e.littleEnd = false
	})
}

// NewModelEncoder creates a ModelEncoder with the given options.
func NewModelEncoder(opts ...EncoderOption) (*ModelEncoder, error) {
	enc := &ModelEncoder{
		compression: format.CompressionNone,
		littleEnd:   true,
	}
	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(enc.compression)
	if err != nil {
		return nil, err
	}
	enc.codec = codec

	return enc, nil
}

// Encode serializes the model into a self-describing blob. The model is
// validated first; an inconsistent model is rejected before any bytes are
// produced.
func (e *ModelEncoder) Encode(m *pca.Model) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("nil model: %w", errs.ErrInvalidInput)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	p := m.Features()
	k := m.Components()
	hasIDs := len(m.FeatureIDs) == p

	header := section.NewModelHeader()
	if e.littleEnd {
		header.Flag.WithLittleEndian()
	} else {
		header.Flag.WithBigEndian()
	}
	header.Flag.SetMethod(m.Method)
	header.Flag.SetCompression(e.compression)
	header.Flag.SetHasFeatureIDs(hasIDs)
	header.FeatureCount = uint32(p)
	header.ComponentCount = uint32(k)
	header.ObservationCount = uint32(m.Observations)

	buf := pool.GetModelBuffer()
	defer pool.PutModelBuffer(buf)

	engine := header.Flag.GetEndianEngine()
	b := buf.B[:0]
	for _, v := range m.Eigenvalues {
		b = engine.AppendUint64(b, math.Float64bits(v))
	}
	// Loadings go out column by column so each component's direction is
	// contiguous.
	for j := range k {
		for i := range p {
			b = engine.AppendUint64(b, math.Float64bits(m.Loadings.At(i, j)))
		}
	}
	for _, v := range m.Means {
		b = engine.AppendUint64(b, math.Float64bits(v))
	}
	for _, v := range m.Scales {
		b = engine.AppendUint64(b, math.Float64bits(v))
	}
	if hasIDs {
		for _, id := range m.FeatureIDs {
			b = engine.AppendUint64(b, id)
		}
	}
	buf.B = b

	header.Checksum = hash.Sum64(b)

	payload, err := e.codec.Compress(b)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	header.PayloadSize = uint32(len(payload))

	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// EncodeModel serializes the model with the default encoder configuration:
// uncompressed, little-endian.
func EncodeModel(m *pca.Model, opts ...EncoderOption) ([]byte, error) {
	enc, err := NewModelEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(m)
}
