package Go_Utils

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hasher is a seeded xxhash. The same seed gives the same hashes in every process, so the values are safe to persist or compare across runs.
// Receivers are thread-safe.
type Hasher uint64

func (u Hasher) digest() *xxhash.Digest {
	d := xxhash.New()
	if u != 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(u))
		_, _ = d.Write(b[:])
	}
	return d
}

// HashBytes hashes the given byte slice. An empty or nil slice is valid.
func (u Hasher) HashBytes(b []byte) uint {
	if u == 0 {
		return uint(xxhash.Sum64(b))
	}
	d := u.digest()
	_, _ = d.Write(b)
	return uint(d.Sum64())
}

// HashString hashes the bytes of v without copying them.
func (u Hasher) HashString(v string) uint {
	if u == 0 {
		return uint(xxhash.Sum64String(v))
	}
	d := u.digest()
	_, _ = d.WriteString(v)
	return uint(d.Sum64())
}

// HashUint hashes v as 8 little endian bytes.
func (u Hasher) HashUint(v uint64) uint {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return u.HashBytes(b[:])
}

// HashInt hashes v.
func (u Hasher) HashInt(v int) uint {
	return u.HashUint(uint64(v))
}
