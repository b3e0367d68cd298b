// Package imgio provides content-addressing for test fixtures built on
// top of internal/bmp: a stable hash of an encoded image's bytes, used
// to name and compare golden files without committing large binary
// blobs to the repository.
package imgio

import "github.com/cespare/xxhash/v2"

// ContentHash returns a stable 64-bit content hash of data, suitable
// for naming or comparing golden BMP fixtures.
func ContentHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}
