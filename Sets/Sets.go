package Sets

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emirpasic/gods/sets"
	"github.com/emirpasic/gods/sets/hashset"
)

// Container is the membership test used to filter lists.
type Container[E any] interface {
	Has(E) bool
}

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

type godsSet[E any] struct {
	s sets.Set
}

func (g godsSet[E]) Has(e E) bool {
	return g.s.Contains(e)
}

// FromGods views s as a Container of E. Elements of s that aren't E never match.
func FromGods[E any](s sets.Set) Container[E] {
	if s == nil {
		return nil
	}
	return godsSet[E]{s}
}

// Of builds a Container holding items.
func Of[E comparable](items ...E) Container[E] {
	s := hashset.New()
	for _, e := range items {
		s.Add(e)
	}
	return godsSet[E]{s}
}

type mapSet[E comparable] struct {
	s mapset.Set[E]
}

func (m mapSet[E]) Has(e E) bool {
	return m.s.Contains(e)
}

// FromMapset views a golang-set as a Container.
func FromMapset[E comparable](s mapset.Set[E]) Container[E] {
	if s == nil {
		return nil
	}
	return mapSet[E]{s}
}

// Func is a predicate used as a Container. A nil Func has nothing.
type Func[E any] func(E) bool

func (f Func[E]) Has(e E) bool {
	return f != nil && f(e)
}
