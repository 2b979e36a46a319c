// Package Lists implements value level set algebra over ordered lists that may hold duplicates.
//
// A nil slice is an absent list. Operations that need both lists fail with an error wrapping ErrNilList when
// given one, IsEqualList and HashCodeForList accept it. Inputs are never modified and every returned list is a
// new, non-nil slice.
package Lists

import (
	"unsafe"

	"github.com/pkg/errors"
	"github.com/yurtup/osscan-test/Sets"
)

// ErrNilList is returned when an operation gets an absent list or set.
var ErrNilList = errors.New("nil list")

func nilArg(op string, arg string) error {
	return errors.Wrapf(ErrNilList, "%s: %s", op, arg)
}

func checkLists[E any](op string, l1, l2 []E) error {
	if l1 == nil {
		return nilArg(op, "list1")
	}
	if l2 == nil {
		return nilArg(op, "list2")
	}
	return nil
}

// EmptyList returns a new list with no elements.
func EmptyList[E any]() []E {
	return make([]E, 0)
}

// Intersection returns the elements found in both lists. An element repeated in both lists appears as many times
// as the smaller count. The result follows the order of the longer list, l2 when the lengths are equal.
func Intersection[E comparable](l1, l2 []E) ([]E, error) {
	if err := checkLists("intersection", l1, l2); err != nil {
		return nil, err
	}
	smaller, larger := l1, l2
	if len(l1) > len(l2) {
		smaller, larger = l2, l1
	}
	b := newBag(smaller)
	res := make([]E, 0, len(smaller))
	for _, e := range larger {
		if b.take(e) {
			res = append(res, e)
		}
	}
	return res, nil
}

// Subtract returns a copy of l1 with one occurrence removed for every element of l2. The first occurrences are
// the ones removed, elements of l2 missing from l1 are ignored.
func Subtract[E comparable](l1, l2 []E) ([]E, error) {
	if err := checkLists("subtract", l1, l2); err != nil {
		return nil, err
	}
	b := newBag(l2)
	res := make([]E, 0, len(l1))
	for _, e := range l1 {
		if !b.take(e) {
			res = append(res, e)
		}
	}
	return res, nil
}

// Union returns l2 appended to l1.
func Union[E any](l1, l2 []E) ([]E, error) {
	if err := checkLists("union", l1, l2); err != nil {
		return nil, err
	}
	res := make([]E, 0, len(l1)+len(l2))
	res = append(res, l1...)
	return append(res, l2...), nil
}

// Sum returns the intersection of the lists subtracted from their union.
func Sum[E comparable](l1, l2 []E) ([]E, error) {
	u, err := Union(l1, l2)
	if err != nil {
		return nil, err
	}
	i, err := Intersection(l1, l2)
	if err != nil {
		return nil, err
	}
	return Subtract(u, i)
}

func same[E1, E2 any](l1 []E1, l2 []E2) bool {
	if l1 == nil || l2 == nil {
		return l1 == nil && l2 == nil
	}
	return len(l1) == len(l2) && unsafe.Pointer(unsafe.SliceData(l1)) == unsafe.Pointer(unsafe.SliceData(l2))
}

// IsEqualList reports whether both lists hold equal elements in the same order.
// Two nil lists are equal, a nil list never equals a non-nil one.
func IsEqualList[E comparable](l1, l2 []E) bool {
	return IsEqualListFunc(l1, l2, func(a, b E) bool { return a == b })
}

// IsEqualListFunc is IsEqualList using eq to compare elements.
func IsEqualListFunc[E1, E2 any](l1 []E1, l2 []E2, eq func(E1, E2) bool) bool {
	if same(l1, l2) {
		return true
	}
	if l1 == nil || l2 == nil || len(l1) != len(l2) {
		return false
	}
	for i := range l1 {
		if !eq(l1[i], l2[i]) {
			return false
		}
	}
	return true
}

// HashCodeForList folds element hashes as h = 31*h + hash(e) starting from 1, wrapping at 32 bits.
// Returns 0 for a nil list. Lists equal by IsEqualList get the same value when hash agrees with ==.
// A nil hash counts every element as 0.
func HashCodeForList[E any](l []E, hash Hasher[E]) int32 {
	if l == nil {
		return 0
	}
	var h int32 = 1
	for _, e := range l {
		var eh int32
		if hash != nil {
			eh = hash(e)
		}
		h = 31*h + eh
	}
	return h
}

// RetainAll returns the elements of collection, in order, that retain has. Duplicates in collection are all kept.
// Only a nil interface is an absent set, a typed nil such as a nil *TreeSet is an empty one.
func RetainAll[E any](collection []E, retain Sets.Container[E]) ([]E, error) {
	return filter("retainAll", collection, retain, true)
}

// RemoveAll returns the elements of collection, in order, that remove doesn't have.
func RemoveAll[E any](collection []E, remove Sets.Container[E]) ([]E, error) {
	return filter("removeAll", collection, remove, false)
}

func filter[E any](op string, collection []E, c Sets.Container[E], keep bool) ([]E, error) {
	if collection == nil {
		return nil, nilArg(op, "collection")
	}
	if c == nil {
		return nil, nilArg(op, "set")
	}
	res := make([]E, 0, len(collection))
	for _, e := range collection {
		if c.Has(e) == keep {
			res = append(res, e)
		}
	}
	return res, nil
}
