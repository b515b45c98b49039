package blob

import (
	"fmt"
	"math"

	"github.com/varlab/princomp/compress"
	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/internal/hash"
	"github.com/varlab/princomp/matrix"
	"github.com/varlab/princomp/pca"
	"github.com/varlab/princomp/section"
)

// DecodeModel parses a model blob produced by a ModelEncoder and materializes
// the fitted model it carries. The header magic, flags and payload checksum
// are all verified before any model state is built.
//
// Fails with errs.ErrBlobTooSmall when the data cannot hold a header,
// errs.ErrInvalidPayload when the payload is truncated or malformed, and
// errs.ErrChecksumMismatch when the payload bytes do not hash to the stored
// checksum.
func DecodeModel(data []byte) (*pca.Model, error) {
	if len(data) < section.HeaderSize {
		return nil, fmt.Errorf("blob is %d bytes, header needs %d: %w",
			len(data), section.HeaderSize, errs.ErrBlobTooSmall)
	}

	header, err := section.ParseModelHeader(data)
	if err != nil {
		return nil, err
	}

	start := int(header.PayloadOffset)
	end := start + int(header.PayloadSize)
	if start > len(data) || end > len(data) {
		return nil, fmt.Errorf("payload [%d:%d] extends past %d-byte blob: %w",
			start, end, len(data), errs.ErrInvalidPayload)
	}

	codec, err := compress.GetCodec(header.Flag.CompressionType())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(data[start:end])
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	p := int(header.FeatureCount)
	k := int(header.ComponentCount)
	hasIDs := header.Flag.HasFeatureIDs()

	words := k + p*k + 2*p
	if hasIDs {
		words += p
	}
	if len(payload) != words*8 {
		return nil, fmt.Errorf("payload is %d bytes, model shape needs %d: %w",
			len(payload), words*8, errs.ErrInvalidPayload)
	}

	if sum := hash.Sum64(payload); sum != header.Checksum {
		return nil, fmt.Errorf("payload hashes to 0x%016X, header says 0x%016X: %w",
			sum, header.Checksum, errs.ErrChecksumMismatch)
	}

	engine := header.Flag.GetEndianEngine()
	next := func() uint64 {
		v := engine.Uint64(payload[:8])
		payload = payload[8:]
		return v
	}

	values := make([]float64, k)
	for i := range k {
		values[i] = math.Float64frombits(next())
	}

	loadings := make([]float64, p*k)
	for j := range k {
		for i := range p {
			loadings[i*k+j] = math.Float64frombits(next())
		}
	}
	mat, err := matrix.NewDense(p, k, loadings)
	if err != nil {
		return nil, fmt.Errorf("rebuild loadings: %w", err)
	}

	means := make([]float64, p)
	for i := range p {
		means[i] = math.Float64frombits(next())
	}
	scales := make([]float64, p)
	for i := range p {
		scales[i] = math.Float64frombits(next())
	}

	var ids []uint64
	if hasIDs {
		ids = make([]uint64, p)
		for i := range p {
			ids[i] = next()
		}
	}

	model := &pca.Model{
		Method:       header.Flag.MethodType(),
		Eigenvalues:  values,
		Loadings:     mat,
		Means:        means,
		Scales:       scales,
		FeatureIDs:   ids,
		Observations: int(header.ObservationCount),
	}
	if err := model.Validate(); err != nil {
		return nil, err
	}

	return model, nil
}
