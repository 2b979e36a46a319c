package TreeSet

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set backed by a B-tree. Range visits elements in ascending order.
type TreeSet[E any] struct {
	t *btree.BTreeG[E]
}

// New TreeSet ordered by <. degree is the B-tree degree, 0 picks a default.
func New[E constraints.Ordered](degree int) *TreeSet[E] {
	return NewFunc[E](degree, func(a, b E) bool { return a < b })
}

// NewFunc creates a TreeSet ordered by less. Two elements are the same when neither is less than the other.
func NewFunc[E any](degree int, less func(a, b E) bool) *TreeSet[E] {
	if degree < 2 {
		degree = 32
	}
	return &TreeSet[E]{t: btree.NewG[E](degree, less)}
}

// From builds an ordered TreeSet of items.
func From[E constraints.Ordered](items ...E) *TreeSet[E] {
	u := New[E](0)
	for _, e := range items {
		u.Put(e)
	}
	return u
}

// Put e into the set. Returns true if e wasn't in the set before.
func (u *TreeSet[E]) Put(e E) bool {
	_, replaced := u.t.ReplaceOrInsert(e)
	return !replaced
}

// Has e in the set. A nil set has nothing.
func (u *TreeSet[E]) Has(e E) bool {
	if u == nil || u.t == nil {
		return false
	}
	return u.t.Has(e)
}

func (u *TreeSet[E]) Remove(e E) bool {
	_, ok := u.t.Delete(e)
	return ok
}

func (u *TreeSet[E]) Size() uint {
	return uint(u.t.Len())
}

// Take the smallest element. Returns zero value if the set is empty.
func (u *TreeSet[E]) Take() (e E) {
	e, _ = u.t.Min()
	return
}

// Range calls f on elements in ascending order until f returns false.
func (u *TreeSet[E]) Range(f func(E) bool) {
	u.t.Ascend(btree.ItemIteratorG[E](f))
}
