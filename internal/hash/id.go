package hash

import "github.com/cespare/xxhash/v2"

// FeatureID computes the xxHash64 of a feature name. Model blobs store these
// hashes instead of the names themselves, keeping the format fixed-width.
func FeatureID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Sum64 computes the xxHash64 of raw bytes. Used for payload checksums.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
