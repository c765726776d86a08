// Package hash computes fingerprints of category tables.
package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Strings computes an xxHash64 fingerprint over an ordered list of strings.
//
// Every value is prefixed with its length as a uvarint, so the fingerprint
// distinguishes ["ab", "c"] from ["a", "bc"] and ["", ""] from [""].
func Strings(values []string) uint64 {
	d := xxhash.New()

	var lenBuf [binary.MaxVarintLen64]byte
	for _, v := range values {
		n := binary.PutUvarint(lenBuf[:], uint64(len(v)))
		_, _ = d.Write(lenBuf[:n])
		_, _ = d.WriteString(v)
	}

	return d.Sum64()
}
