package Lists

import (
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher of list elements. It must be deterministic and return equal values for equal elements.
type Hasher[E any] func(E) int32

// OptHasher hashes present values with h and absent ones as 0.
func OptHasher[E comparable](h Hasher[E]) Hasher[Opt[E]] {
	return func(o Opt[E]) int32 {
		if !o.ok || h == nil {
			return 0
		}
		return h(o.v)
	}
}

// IntHash is the value itself for 32 bit integers and the two halves xor-ed for wider ones.
func IntHash[E constraints.Integer](e E) int32 {
	if unsafe.Sizeof(e) <= 4 {
		return int32(e)
	}
	return fold(uint64(e))
}

func fold(x uint64) int32 {
	return int32(uint32(x ^ x>>32))
}

// StringHash is xxhash of s folded to 32 bits.
func StringHash(s string) int32 {
	return fold(xxhash.Sum64String(s))
}

func BytesHash(b []byte) int32 {
	return fold(xxhash.Sum64(b))
}

// BoolHash matches the usual 1231/1237 convention.
func BoolHash(b bool) int32 {
	if b {
		return 1231
	}
	return 1237
}
