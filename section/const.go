package section

const (
	// Bit masks for the flag options word.
	EndiannessMask   = 0x0001 // endianness bit (bit 0): 0 little-endian, 1 big-endian
	FeatureIDsMask   = 0x0002 // feature-ID payload bit (bit 1)
	ReservedBitsMask = 0x000C // reserved bits (bits 2-3), must be zero
	MagicNumberMask  = 0xFFF0 // magic number (bits 4-15)

	// MagicModelV1Opt is the version 1 magic number of the fitted-model blob
	// format, stored in bits 4-15 of the flag options word.
	MagicModelV1Opt = 0xEC10

	// HeaderSize is the fixed size of the model header in bytes.
	HeaderSize = 40
)
