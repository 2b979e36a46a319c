package HashSet

import "math"

// bucket of the hopscotch table. dHash is the delta from the home bucket to the first element hashed to it,
// dLink is the delta to the next element with the same home. 0 means unset, other values are offset by math.MinInt8.
type bucket[E comparable] struct {
	element      E
	dHash, dLink byte
}

func (b *bucket[E]) hashed() bool { return b.dHash != 0 }

func (b *bucket[E]) linked() bool { return b.dLink != 0 }

func (b *bucket[E]) clrLink() { b.dLink = 0 }

func (b *bucket[E]) deltaHash() int { return int(b.dHash) + math.MinInt8 }

func (b *bucket[E]) deltaLink() int { return int(b.dLink) + math.MinInt8 }

func (b *bucket[E]) useDeltaHash(d int) { b.dHash = offset(d) }

func (b *bucket[E]) useDeltaLink(d int) { b.dLink = offset(d) }

func offset(x int) byte {
	return byte(x - math.MinInt8)
}
