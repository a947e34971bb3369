package iterange

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// miniCur is a slice position, just enough to satisfy Endpoint.
type miniCur struct {
	s []int
	i int
}

func (c *miniCur) Next() *miniCur { c.i++; return c }
func (c *miniCur) Deref() *int    { return &c.s[c.i] }

func over(s []int) (begin, end miniCur) {
	return miniCur{s: s}, miniCur{s: s, i: len(s)}
}

func TestNew_StartEnd(t *testing.T) {
	begin, end := over([]int{1, 2, 3})

	r := New[miniCur, int](begin, end)
	assert.Equal(t, begin, r.Start())
	assert.Equal(t, end, r.End())
}

func TestNew_EndpointsAreCopies(t *testing.T) {
	begin, end := over([]int{1, 2, 3})
	r := New[miniCur, int](begin, end)

	// advancing the originals must not affect the stored endpoints
	begin.Next()
	end.Next()
	assert.Equal(t, 0, r.Start().i)
	assert.Equal(t, 3, r.End().i)

	// nor must advancing a returned copy
	s := r.Start()
	s.Next()
	assert.Equal(t, 0, r.Start().i)
}

func TestEqual(t *testing.T) {
	data := []int{1, 2, 3}
	begin, end := over(data)

	a := New[miniCur, int](begin, end)
	b := New[miniCur, int](begin, end)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	// differing in either endpoint makes them unequal
	mid := miniCur{s: data, i: 1}
	assert.False(t, a.Equal(New[miniCur, int](mid, end)))
	assert.False(t, a.Equal(New[miniCur, int](begin, mid)))

	// reversed endpoints are not equal...
	assert.False(t, a.Equal(New[miniCur, int](end, begin)))

	// ...unless both endpoints coincide
	empty1 := New[miniCur, int](begin, begin)
	empty2 := New[miniCur, int](begin, begin)
	assert.True(t, empty1.Equal(empty2))
}

func TestWalk(t *testing.T) {
	tests := []struct {
		name string
		data []int
		stop func(e int) bool
		want []int
	}{
		{
			name: "empty",
			data: nil,
			want: nil,
		},
		{
			name: "all",
			data: []int{1, 2, 3, 4},
			want: []int{1, 2, 3, 4},
		},
		{
			name: "early stop",
			data: []int{1, 2, 3, 4},
			stop: func(e int) bool { return e == 2 },
			want: []int{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			begin, end := over(tt.data)
			r := New[miniCur, int](begin, end)

			var got []int
			Walk(r, func(e int) bool {
				got = append(got, e)
				return tt.stop == nil || !tt.stop(e)
			})
			assert.Equal(t, tt.want, got)

			// walking must not move the stored endpoints
			assert.Equal(t, begin, r.Start())
		})
	}
}

func TestCollect(t *testing.T) {
	begin, end := over([]int{5, 6, 7})
	r := New[miniCur, int](begin, end)
	assert.Equal(t, []int{5, 6, 7}, Collect[miniCur, int, *miniCur](r))
}
