// Package section defines the fixed-size header of the model blob format.
//
// A model blob is a single header followed by one payload section. The
// header carries the packed flag word (magic number, endianness, payload
// layout bits), the method and compression enums, the model's shape counts,
// and the checksum of the uncompressed payload. All multi-byte header fields
// after the flag word are written in the endianness the flag selects; the
// flag word itself is always little-endian so a decoder can bootstrap.
package section
