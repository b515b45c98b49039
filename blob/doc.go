// Package blob serializes fitted models into a compact binary format and
// restores them.
//
// A model blob is a fixed 40-byte header (see the section package) followed
// by an optionally compressed payload. The payload carries, in order, the
// kept eigenvalues, the loading matrix column by column, the preprocessing
// means and scales, and (when feature identity tracking is enabled) one
// xxHash64 ID per feature. All payload values are encoded in the endianness
// declared by the header flag, and the header stores an xxHash64 checksum of
// the uncompressed payload so corruption is detected before a model is
// materialized.
//
// Encoding:
//
//	encoder, err := blob.NewModelEncoder(blob.WithCompression(format.CompressionZstd))
//	if err != nil {
//		return err
//	}
//	data, err := encoder.Encode(model)
//
// Decoding:
//
//	model, err := blob.DecodeModel(data)
package blob
