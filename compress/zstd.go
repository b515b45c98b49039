package compress

// ZstdCompressor provides Zstandard compression for model blob payloads.
//
// Zstd offers the best ratio of the built-in codecs and is the right choice
// when fitted models are archived or shipped over the network. Two
// implementations back the same type:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - pure-Go builds use klauspost/compress/zstd
//
// Both produce standard Zstandard frames, so blobs written by one build are
// readable by the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
