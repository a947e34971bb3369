package cursor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.lepak.sg/itertraits/iterange"
	"go.lepak.sg/itertraits/traits"
)

func TestSlice(t *testing.T) {
	s := []string{"a", "b", "c"}

	c := First(s)
	assert.Equal(t, 0, c.Index())
	assert.Equal(t, "a", *c.Deref())

	c.Next()
	assert.Equal(t, 1, c.Index())
	assert.Equal(t, "b", *c.Deref())

	// Next returns the receiver, so steps chain
	assert.Equal(t, "c", *c.Next().Deref())

	last := Last(s)
	assert.Equal(t, len(s), last.Index())
	at := At(s, 1)
	assert.Equal(t, "b", *at.Deref())
}

func TestSlice_DerefIsAWindowIntoTheSlice(t *testing.T) {
	s := []int{10, 20}
	c := First(s)

	*c.Deref() = 11
	assert.Equal(t, []int{11, 20}, s)
}

func TestSlice_Walk(t *testing.T) {
	s := []string{"x", "y", "z"}
	r := iterange.New[Slice[string], string](First(s), Last(s))

	var got []string
	iterange.Walk(r, func(e string) bool {
		got = append(got, e)
		return true
	})
	assert.Equal(t, s, got)
}

func TestCount(t *testing.T) {
	c := Of(40)
	assert.Equal(t, 40, *c.Deref())
	assert.Equal(t, 42, *c.Next().Next().Deref())

	r := iterange.New[Count[int], int](Of(0), Of(5))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, iterange.Collect[Count[int], int, *Count[int]](r))
}

func TestCursorsClassifyAsIterators(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"Slice[int]", reflect.TypeOf(First([]int{})), true},
		{"Slice[string]", reflect.TypeOf(First([]string{})), true},
		{"Count[int]", reflect.TypeOf(Of(0)), true},
		{"*Slice[int]", reflect.TypeOf(new(Slice[int])), false},
		{"*Count[int]", reflect.TypeOf(new(Count[int])), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, traits.IsIterator(tt.typ))
		})
	}
}
