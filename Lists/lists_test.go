package Lists

import (
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	Go_Utils "github.com/yurtup/osscan-test"
	"github.com/yurtup/osscan-test/Sets"
	"github.com/yurtup/osscan-test/Sets/HashSet"
	"github.com/yurtup/osscan-test/Sets/TreeSet"
)

func TestIntersection(t *testing.T) {
	got, err := Intersection([]int{1, 2, 2, 3}, []int{2, 2, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, got)

	got, err = Intersection([]int{4, 3, 2, 1, 0}, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, got, "follows the longer list")

	got, err = Intersection([]int{1, 2, 3}, []int{3, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, got, "equal lengths follow list2")

	got, err = Intersection([]int{1}, []int{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSubtract(t *testing.T) {
	got, err := Subtract([]int{1, 2, 2, 3}, []int{2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	got, err = Subtract([]int{2, 1, 2, 2}, []int{2, 2, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got, "first occurrences go first")

	a := []Opt[string]{None[string](), Some("a"), None[string]()}
	got2, err := Subtract(a, []Opt[string]{None[string]()})
	require.NoError(t, err)
	assert.Equal(t, []Opt[string]{Some("a"), None[string]()}, got2)
}

func TestUnion(t *testing.T) {
	got, err := Union([]int{1, 2}, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3}, got)

	got, err = Union([]int{}, []int{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, int32(1), HashCodeForList(got, IntHash[int]))
}

func TestSum(t *testing.T) {
	got, err := Sum([]int{1, 2, 2, 3}, []int{2, 4})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 2, 4}, got)

	_, err = Sum([]int{1}, nil)
	assert.True(t, errors.Is(err, ErrNilList))
}

func TestNilLists(t *testing.T) {
	funcs := map[string]func(l1, l2 []int) ([]int, error){
		"intersection": Intersection[int],
		"subtract":     Subtract[int],
		"union":        Union[int],
		"sum":          Sum[int],
	}
	for name, f := range funcs {
		_, err := f(nil, []int{1})
		assert.ErrorIs(t, err, ErrNilList, name)
		assert.Contains(t, err.Error(), "list1", name)
		_, err = f([]int{1}, nil)
		assert.ErrorIs(t, err, ErrNilList, name)
		_, err = f(nil, nil)
		assert.ErrorIs(t, err, ErrNilList, name)
	}

	_, err := RetainAll(nil, Sets.Of(1))
	assert.ErrorIs(t, err, ErrNilList)
	_, err = RetainAll([]int{1}, nil)
	assert.ErrorIs(t, err, ErrNilList)
	_, err = RemoveAll(nil, Sets.Of(1))
	assert.ErrorIs(t, err, ErrNilList)
	_, err = RemoveAll([]int{1}, nil)
	assert.ErrorIs(t, err, ErrNilList)
}

func TestIsEqualList(t *testing.T) {
	assert.True(t, IsEqualList(
		[]Opt[int]{Some(1), None[int](), Some(3)},
		[]Opt[int]{Some(1), None[int](), Some(3)}))
	assert.False(t, IsEqualList([]int{1, 2}, []int{2, 1}))
	assert.False(t, IsEqualList([]int{1, 2}, []int{1, 2, 3}))
	assert.False(t, IsEqualList([]Opt[int]{None[int]()}, []Opt[int]{Some(0)}))

	a := []int{1, 2, 3}
	assert.True(t, IsEqualList(a, a))
	assert.True(t, IsEqualList[int](nil, nil))
	assert.False(t, IsEqualList(nil, []int{}))
	assert.False(t, IsEqualList([]int{}, nil))
	assert.True(t, IsEqualList([]int{}, EmptyList[int]()))
	assert.False(t, IsEqualList(a[:2], a), "same backing array, different length")

	assert.True(t, IsEqualListFunc([]string{"1", "2"}, []int{1, 2}, func(s string, i int) bool {
		return s == string(rune('0'+i))
	}))
}

func TestHashCodeForList(t *testing.T) {
	assert.Equal(t, int32(1), HashCodeForList([]int{}, IntHash[int]))
	assert.Equal(t, int32(0), HashCodeForList[int](nil, IntHash[int]))
	assert.Equal(t, int32(31*(31*(31+1)+2)+3), HashCodeForList([]int{1, 2, 3}, IntHash[int]))
	assert.Equal(t, int32(31*(31*(31+1)+0)+3),
		HashCodeForList([]Opt[int]{Some(1), None[int](), Some(3)}, OptHasher(IntHash[int])))
	assert.NotEqual(t, HashCodeForList([]int{1, 2}, IntHash[int]), HashCodeForList([]int{2, 1}, IntHash[int]))
	assert.Equal(t, int32(31*31), HashCodeForList([]string{"a", "b"}, nil))

	// wraps around like 32 bit integer arithmetic.
	long := make([]int32, 64)
	for i := range long {
		long[i] = 1 << 30
	}
	var want int32 = 1
	for _, e := range long {
		want = 31*want + e
	}
	assert.Equal(t, want, HashCodeForList(long, IntHash[int32]))
}

func TestHashers(t *testing.T) {
	assert.Equal(t, int32(-1), IntHash(int32(-1)))
	assert.Equal(t, int32(0), IntHash(int64(-1)))
	assert.Equal(t, int32(7), IntHash(uint64(7)))
	assert.Equal(t, StringHash("osscan"), StringHash(string([]byte("osscan"))))
	assert.Equal(t, StringHash("osscan"), BytesHash([]byte("osscan")))
	assert.NotEqual(t, BoolHash(true), BoolHash(false))
	assert.Equal(t, int32(0), OptHasher(StringHash)(None[string]()))
}

func TestRetainRemove(t *testing.T) {
	seed := Go_Utils.Hasher(0)
	containers := map[string]Sets.Container[int]{
		"gods":    Sets.Of(2, 3),
		"mapset":  Sets.FromMapset(mapset.NewSet(2, 3)),
		"hashset": HashSet.From(seed.HashInt, 2, 3, 3),
		"treeset": TreeSet.From(3, 2),
		"func":    Sets.Func[int](func(e int) bool { return e == 2 || e == 3 }),
	}
	for name, c := range containers {
		got, err := RetainAll([]int{1, 2, 2, 3}, c)
		require.NoError(t, err, name)
		assert.Equal(t, []int{2, 2, 3}, got, name)

		got, err = RemoveAll([]int{1, 2, 2, 3}, c)
		require.NoError(t, err, name)
		assert.Equal(t, []int{1}, got, name)
	}

	got, err := RetainAll([]int{1}, Sets.Of[int]())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTypedNilContainers(t *testing.T) {
	empties := map[string]Sets.Container[int]{
		"treeset": (*TreeSet.TreeSet[int])(nil),
		"hashset": (*HashSet.HashSet[int])(nil),
		"func":    Sets.Func[int](nil),
	}
	for name, c := range empties {
		got, err := RetainAll([]int{1, 2}, c)
		require.NoError(t, err, name)
		assert.Equal(t, []int{}, got, name)

		got, err = RemoveAll([]int{1, 2}, c)
		require.NoError(t, err, name)
		assert.Equal(t, []int{1, 2}, got, name)
	}
}

func TestInputsUntouched(t *testing.T) {
	a, b := []int{3, 1, 2, 2}, []int{2, 5, 3}
	ca, cb := append([]int(nil), a...), append([]int(nil), b...)
	_, _ = Intersection(a, b)
	_, _ = Subtract(a, b)
	_, _ = Sum(a, b)
	u, _ := Union(a, b)
	u[0] = 100
	_, _ = RetainAll(a, Sets.Of(b...))
	_, _ = RemoveAll(a, Sets.Of(b...))
	assert.Equal(t, ca, a)
	assert.Equal(t, cb, b)
}

func count(l []int, v int) (n int) {
	for _, e := range l {
		if e == v {
			n++
		}
	}
	return
}

func randList(rg *rand.Rand) []int {
	l := make([]int, rg.Intn(20))
	for i := range l {
		l[i] = rg.Intn(6)
	}
	return l
}

func TestProperties(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	for n := 0; n < 500; n++ {
		a, b := randList(rg), randList(rg)

		u, err := Union(a, b)
		require.NoError(t, err)
		require.Len(t, u, len(a)+len(b))
		assert.Equal(t, a, u[:len(a)])
		assert.Equal(t, b, u[len(a):])

		in, err := Intersection(a, b)
		require.NoError(t, err)
		for v := 0; v < 6; v++ {
			assert.Equal(t, min(count(a, v), count(b, v)), count(in, v))
		}

		sub, err := Subtract(a, b)
		require.NoError(t, err)
		for v := 0; v < 6; v++ {
			assert.Equal(t, max(count(a, v)-count(b, v), 0), count(sub, v))
		}

		s, err := Sum(a, b)
		require.NoError(t, err)
		want, err := Subtract(u, in)
		require.NoError(t, err)
		assert.True(t, IsEqualList(want, s))

		assert.True(t, IsEqualList(a, a))
		assert.Equal(t, IsEqualList(a, b), IsEqualList(b, a))
		c := append([]int{}, a...)
		if assert.True(t, IsEqualList(a, c)) {
			assert.Equal(t, HashCodeForList(a, IntHash[int]), HashCodeForList(c, IntHash[int]))
		}
	}
}
