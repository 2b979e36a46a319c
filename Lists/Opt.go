package Lists

import "fmt"

// Opt is an element that may be absent. The zero value is absent. Opt is comparable: two absent values are
// equal and an absent value never equals a present one.
type Opt[E comparable] struct {
	v  E
	ok bool
}

// Some wraps a present value.
func Some[E comparable](v E) Opt[E] {
	return Opt[E]{v: v, ok: true}
}

// None is the absent element, the same as the zero Opt.
func None[E comparable]() (o Opt[E]) {
	return
}

// Get the value, ok is false if o is absent.
func (o Opt[E]) Get() (v E, ok bool) {
	return o.v, o.ok
}

// Present reports whether o holds a value.
func (o Opt[E]) Present() bool {
	return o.ok
}

func (o Opt[E]) String() string {
	if !o.ok {
		return "null"
	}
	return fmt.Sprint(o.v)
}

// Opts wraps every element in Some.
func Opts[E comparable](l []E) []Opt[E] {
	if l == nil {
		return nil
	}
	res := make([]Opt[E], len(l))
	for i, e := range l {
		res[i] = Some(e)
	}
	return res
}
