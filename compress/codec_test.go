package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/varlab/princomp/format"
)

// loadingPayload builds a payload resembling a packed loading matrix: float64
// values with repeating structure, the shape the codecs see in practice.
func loadingPayload(n int) []byte {
	buf := make([]byte, 0, n*8)
	for i := range n {
		v := math.Sin(float64(i)/16.0) * 0.25
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func TestCodecRoundTrip(t *testing.T) {
	payload := loadingPayload(512)

	tests := []struct {
		name  string
		ctype format.CompressionType
	}{
		{"None", format.CompressionNone},
		{"Zstd", format.CompressionZstd},
		{"S2", format.CompressionS2},
		{"LZ4", format.CompressionLZ4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := GetCodec(tt.ctype)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ctype := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ctype)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestCreateCodecInvalidType(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xFF), "loadings")
	require.Error(t, err)
	require.Contains(t, err.Error(), "loadings")

	_, err = GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestNoOpSharesBuffer(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := loadingPayload(8)

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0], "noop must not copy")
}

func TestLZ4CorruptedInput(t *testing.T) {
	codec := NewLZ4Compressor()
	// A run of 0xFF bytes is not a valid LZ4 block.
	_, err := codec.Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestZstdCorruptedInput(t *testing.T) {
	codec := NewZstdCompressor()
	_, err := codec.Decompress([]byte{0x00, 0x01, 0x02, 0x03})
	require.Error(t, err)
}
