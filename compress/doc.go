// Package compress provides compression codecs for princomp model blob payloads.
//
// Compression is applied at the payload level, after the fitted model's
// eigenvalues, loadings, means and scales have been packed into their binary
// sections. The header stays uncompressed so a decoder can always read the
// counts and offsets before touching a codec.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): no compression, the default. Loading
//     matrices are small and nearly incompressible for decorrelated data.
//   - Zstd (format.CompressionZstd): best ratio, for archived models.
//     Uses libzstd under cgo and klauspost/compress/zstd otherwise.
//   - S2 (format.CompressionS2): balanced ratio and throughput.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// Codecs are selected through format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//
// All built-in codecs are stateless and safe for concurrent use; internal
// encoder/decoder instances are pooled where the underlying library benefits
// from reuse.
package compress
