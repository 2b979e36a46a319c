package Lists

// bag counts the remaining occurrences of each element.
type bag[E comparable] map[E]int

func newBag[E comparable](l []E) bag[E] {
	b := make(bag[E], len(l))
	for _, e := range l {
		b[e]++
	}
	return b
}

// take one occurrence of e, false if none is left.
func (b bag[E]) take(e E) bool {
	n := b[e]
	if n == 0 {
		return false
	}
	if n == 1 {
		delete(b, e)
	} else {
		b[e] = n - 1
	}
	return true
}
