package HashSet

import (
	"math/bits"

	Go_Utils "github.com/yurtup/osscan-test"
)

const maxSparse = 8

const (
	fail byte = iota
	added
	exist
)

// New HashSet of type E.
// h is the neighborhood size parameter in Hopscotch hashing, 16 is a good value, it must be below 128.
// size is used to calculate the initial table size that should handle size elements without resizing.
// hash must return equal values for equal elements, Go_Utils.Hasher methods are suitable.
// The table stops growing once it has more than maxSparse buckets per element. Elements that still don't fit
// in their neighborhood go to a linear overflow list, so a hash with many collisions degrades lookups to a scan
// instead of growing the table without bound.
func New[E comparable](h byte, size uint, hash func(E) uint) *HashSet[E] {
	if hash == nil {
		panic("HashSet: nil hash function")
	}
	if h == 0 || h > 127 {
		panic("HashSet: neighborhood size out of range")
	}
	bktLen := 1<<bits.Len(size) + uint(h)
	return &HashSet[E]{bkt: make([]bucket[E], bktLen), usedBkt: Go_Utils.NewBitArray(bktLen), h: h, hashes: make([]uint, bktLen), hasher: hash}
}

// From builds a HashSet holding every element of items, duplicates are stored once.
func From[E comparable](hash func(E) uint, items ...E) *HashSet[E] {
	u := New[E](16, uint(len(items)), hash)
	for _, e := range items {
		u.Put(e)
	}
	return u
}

type HashSet[E comparable] struct {
	bkt     []bucket[E]
	usedBkt Go_Utils.BitArray
	hashes  []uint
	hasher  func(E) uint
	spill   []E // elements that found no bucket, see New
	sz      uint
	h       byte
}

func (u *HashSet[E]) mod(hash uint) int {
	return int(hash) & (len(u.bkt) - int(u.h) - 1)
}

func (u *HashSet[E]) expand() {
	newSize := uint((len(u.bkt)-int(u.h))<<1) + uint(u.h)
	M := HashSet[E]{bkt: make([]bucket[E], newSize), h: u.h, usedBkt: Go_Utils.NewBitArray(newSize), hashes: make([]uint, newSize), hasher: u.hasher}
	for i, e := range u.bkt {
		if u.usedBkt.Get(i) && M.tryPut(&e.element, u.hashes[i]) == fail {
			M.spill = append(M.spill, e.element)
		}
	}
	for _, e := range u.spill {
		if M.tryPut(&e, u.hasher(e)) == fail {
			M.spill = append(M.spill, e)
		}
	}

	u.bkt = M.bkt
	u.usedBkt = M.usedBkt
	u.hashes = M.hashes
	u.spill = M.spill
}

// crowded reports whether the table is already too sparse to be worth doubling.
func (u *HashSet[E]) crowded() bool {
	return uint(len(u.bkt)-int(u.h)) > maxSparse*(u.sz+1)
}

func (u *HashSet[E]) spilled(e E) int {
	for i, s := range u.spill {
		if s == e {
			return i
		}
	}
	return -1
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.sz
}

// Remove e from the set. Returns true if the removal is successful.
func (u *HashSet[E]) Remove(e E) bool {
	if i0 := u.mod(u.hasher(e)); u.bkt[i0].hashed() {
		prev := &u.bkt[i0].dHash
		for i1 := i0 + u.bkt[i0].deltaHash(); ; i1 = i1 + u.bkt[i1].deltaLink() {
			if u.usedBkt.Get(i1) && u.bkt[i1].element == e {
				u.usedBkt.Clr(i1)
				u.sz--
				if u.bkt[i1].linked() {
					*prev = offset(u.bkt[i1].deltaLink() + i1 - i0)
				} else {
					*prev = 0
				}
				u.bkt[i1].clrLink()
				var zero E
				u.bkt[i1].element = zero
				return true
			}
			if !u.bkt[i1].linked() {
				break
			}
			i0 = i1
			prev = &u.bkt[i0].dLink
		}
	}
	if i := u.spilled(e); i > -1 {
		last := len(u.spill) - 1
		u.spill[i] = u.spill[last]
		var zero E
		u.spill[last] = zero
		u.spill = u.spill[:last]
		u.sz--
		return true
	}
	return false
}

// Has e in the set. Returns true if e is present in the set. A nil set has nothing.
func (u *HashSet[E]) Has(e E) bool {
	if u == nil {
		return false
	}
	if i0 := u.mod(u.hasher(e)); u.bkt[i0].hashed() {
		for i1 := i0 + u.bkt[i0].deltaHash(); ; i1 = i1 + u.bkt[i1].deltaLink() {
			if u.usedBkt.Get(i1) && u.bkt[i1].element == e {
				return true
			}
			if !u.bkt[i1].linked() {
				break
			}
		}
	}
	return u.spilled(e) > -1
}

func (u *HashSet[E]) fillEmpty(i_hash int, i_free int, e *E) {
	u.bkt[i_free].element = *e
	u.sz++
	if u.bkt[i_hash].hashed() {
		u.bkt[i_free].useDeltaLink(i_hash + u.bkt[i_hash].deltaHash() - i_free)
	} else {
		u.bkt[i_free].clrLink()
	}
	u.bkt[i_hash].useDeltaHash(i_free - i_hash)
}

func (u *HashSet[E]) tryPut(e *E, hash uint) byte {
	i_hash := u.mod(hash)
	if u.bkt[i_hash].hashed() {
		for i0 := i_hash + u.bkt[i_hash].deltaHash(); ; i0 = i0 + u.bkt[i0].deltaLink() {
			if u.usedBkt.Get(i0) && u.bkt[i0].element == *e {
				return exist
			}
			if !u.bkt[i0].linked() {
				break
			}
		}
	}
	for i_free := i_hash; i_free < len(u.bkt); i_free++ {
		if !u.usedBkt.Get(i_free) {
			if i_free-i_hash < int(u.h) {
				u.usedBkt.Set(i_free)
				u.fillEmpty(i_hash, i_free, e)
				u.hashes[i_free] = hash
				return added
			}
		search:
			for i := i_free - int(u.h) + 1; i < i_free; i++ {
				if i0 := i; u.bkt[i0].hashed() {
					prev := &u.bkt[i0].dHash
					for i1 := i0 + u.bkt[i0].deltaHash(); ; i1 = i1 + u.bkt[i1].deltaLink() {
						if i_free-int(u.h) < i1 && i1 < i_free {
							*prev = offset(i_free - i0)

							u.bkt[i_free].element = u.bkt[i1].element
							u.hashes[i_free] = u.hashes[i1]
							u.usedBkt.Set(i_free)

							if u.bkt[i1].linked() {
								u.bkt[i_free].useDeltaLink(u.bkt[i1].deltaLink() + i1 - i_free)
							} else {
								u.bkt[i_free].clrLink()
							}

							u.bkt[i1].clrLink()

							if i1 < i_hash+int(u.h) {
								u.fillEmpty(i_hash, i1, e)
								u.hashes[i1] = hash
								return added
							}
							u.usedBkt.Clr(i1)
							i_free = i1
							i = i_free - int(u.h)
							continue search
						}
						if !u.bkt[i1].linked() {
							break
						}
						i0 = i1
						prev = &u.bkt[i0].dLink
					}
				}
			}
			return fail
		}
	}
	return fail
}

// Put e into the set. Returns true if e wasn't in the set before.
func (u *HashSet[E]) Put(e E) bool {
	if u.spilled(e) > -1 {
		return false
	}
	var t byte
	for hash := u.hasher(e); ; {
		if t = u.tryPut(&e, hash); t != fail {
			break
		}
		if u.crowded() {
			u.spill = append(u.spill, e)
			u.sz++
			return true
		}
		u.expand()
	}
	return t == added
}

// Take an arbitrary element from the set. Returns zero value if the set is empty.
// Doesn't guarantee which element it will return.
// Faster than iterating with Range.
func (u *HashSet[E]) Take() (e E) {
	if i := u.usedBkt.First(); i > -1 {
		e = u.bkt[i].element
	} else if len(u.spill) > 0 {
		e = u.spill[0]
	}
	return
}

// Range over elements of the set and call f on them.
// Stops when f returns false.
// It uses range to iterate through the bucket array, so modification during iteration won't be visible to f.
func (u *HashSet[E]) Range(f func(E) bool) {
	for i, b := range u.bkt {
		if u.usedBkt.Get(i) {
			if !f(b.element) {
				return
			}
		}
	}
	for _, e := range u.spill {
		if !f(e) {
			return
		}
	}
}
