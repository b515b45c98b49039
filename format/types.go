package format

type (
	MethodType      uint8
	CompressionType uint8
)

const (
	MethodEigen MethodType = 0x1 // MethodEigen decomposes the covariance matrix with Jacobi rotations.
	MethodSVD   MethodType = 0x2 // MethodSVD factorizes the preprocessed data matrix directly.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m MethodType) String() string {
	switch m {
	case MethodEigen:
		return "Eigen"
	case MethodSVD:
		return "SVD"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
