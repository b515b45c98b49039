package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varlab/princomp/errs"
	"github.com/varlab/princomp/format"
	"github.com/varlab/princomp/internal/hash"
	"github.com/varlab/princomp/matrix"
	"github.com/varlab/princomp/pca"
	"github.com/varlab/princomp/section"
)

func fittedModel(t *testing.T) *pca.Model {
	t.Helper()

	loadings, err := matrix.NewDense(3, 2, []float64{
		0.8, 0.1,
		0.5, -0.6,
		0.3, 0.8,
	})
	require.NoError(t, err)

	return &pca.Model{
		Method:      format.MethodEigen,
		Eigenvalues: []float64{2.5, 1.25},
		Loadings:    loadings,
		Means:       []float64{1.0, -2.0, 0.5},
		Scales:      []float64{1.0, 2.0, 0.25},
		FeatureIDs: []uint64{
			hash.FeatureID("height"),
			hash.FeatureID("weight"),
			hash.FeatureID("age"),
		},
		Observations: 42,
	}
}

func requireSameModel(t *testing.T, want, got *pca.Model) {
	t.Helper()

	require.Equal(t, want.Method, got.Method)
	require.Equal(t, want.Eigenvalues, got.Eigenvalues)
	require.Equal(t, want.Loadings.RawData(), got.Loadings.RawData())
	require.Equal(t, want.Means, got.Means)
	require.Equal(t, want.Scales, got.Scales)
	require.Equal(t, want.FeatureIDs, got.FeatureIDs)
	require.Equal(t, want.Observations, got.Observations)
}

func TestRoundTripAllCodecs(t *testing.T) {
	codecs := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	model := fittedModel(t)
	for _, c := range codecs {
		t.Run(c.String(), func(t *testing.T) {
			data, err := EncodeModel(model, WithCompression(c))
			require.NoError(t, err)

			decoded, err := DecodeModel(data)
			require.NoError(t, err)
			requireSameModel(t, model, decoded)
		})
	}
}

func TestRoundTripBigEndian(t *testing.T) {
	model := fittedModel(t)

	data, err := EncodeModel(model, WithBigEndian(), WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	decoded, err := DecodeModel(data)
	require.NoError(t, err)
	requireSameModel(t, model, decoded)
}

func TestRoundTripWithoutFeatureIDs(t *testing.T) {
	model := fittedModel(t)
	model.FeatureIDs = nil

	data, err := EncodeModel(model)
	require.NoError(t, err)

	decoded, err := DecodeModel(data)
	require.NoError(t, err)
	require.Nil(t, decoded.FeatureIDs)
	require.Equal(t, model.Eigenvalues, decoded.Eigenvalues)
}

func TestDecodedModelProjects(t *testing.T) {
	model := fittedModel(t)

	data, err := EncodeModel(model, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	decoded, err := DecodeModel(data)
	require.NoError(t, err)

	fresh, err := matrix.NewDense(2, 3, []float64{
		1.5, -1.0, 0.75,
		0.5, -3.0, 0.25,
	})
	require.NoError(t, err)

	want, err := model.Project(fresh)
	require.NoError(t, err)
	got, err := decoded.Project(fresh)
	require.NoError(t, err)
	require.Equal(t, want.RawData(), got.RawData())
}

func TestEncoderReusable(t *testing.T) {
	enc, err := NewModelEncoder(WithCompression(format.CompressionS2))
	require.NoError(t, err)

	model := fittedModel(t)
	first, err := enc.Encode(model)
	require.NoError(t, err)
	second, err := enc.Encode(model)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEncodeNilModel(t *testing.T) {
	_, err := EncodeModel(nil)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestEncodeInconsistentModel(t *testing.T) {
	model := fittedModel(t)
	model.Means = model.Means[:1]

	_, err := EncodeModel(model)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestEncoderInvalidCompression(t *testing.T) {
	_, err := NewModelEncoder(WithCompression(format.CompressionType(0x7F)))
	require.Error(t, err)
}

func TestDecodeTooSmall(t *testing.T) {
	_, err := DecodeModel(make([]byte, section.HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrBlobTooSmall)
}

func TestDecodeBadMagic(t *testing.T) {
	data, err := EncodeModel(fittedModel(t))
	require.NoError(t, err)

	data[1] ^= 0xF0
	_, err = DecodeModel(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestDecodeTruncatedPayload(t *testing.T) {
	data, err := EncodeModel(fittedModel(t))
	require.NoError(t, err)

	_, err = DecodeModel(data[:len(data)-8])
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func TestDecodeCorruptedPayload(t *testing.T) {
	// Uncompressed so the flipped byte reaches the checksum stage instead of
	// failing decompression.
	data, err := EncodeModel(fittedModel(t))
	require.NoError(t, err)

	data[len(data)-1] ^= 0xFF
	_, err = DecodeModel(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecodeCorruptedChecksum(t *testing.T) {
	data, err := EncodeModel(fittedModel(t))
	require.NoError(t, err)

	data[24] ^= 0x01 // checksum bytes live at offset 24
	_, err = DecodeModel(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}
