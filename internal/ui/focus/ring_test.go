package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNth(t *testing.T) {
	list := []string{"zero", "one", "two", "three", "four", "five"}

	tests := []struct {
		n    int
		want string
	}{
		{0, "zero"},
		{3, "three"},
		{-1, "five"},
		{6, "zero"},
		{-6, "zero"},
		{-7, "five"},
		{11, "five"},
		{-12, "zero"},
		{1000003, "one"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Nth(list, tt.n), "Nth(list, %d)", tt.n)
	}
}

func TestNth_IsPeriodic(t *testing.T) {
	seqs := [][]int{{7}, {1, 2}, {4, 5, 6, 7, 8}}
	for _, s := range seqs {
		l := len(s)
		for n := -3 * l; n <= 3*l; n++ {
			assert.Equal(t, Nth(s, n), Nth(s, n+l))
			assert.Equal(t, Nth(s, n), Nth(s, n-l))
		}
		assert.Equal(t, s[0], Nth(s, 0))
		assert.Equal(t, s[l-1], Nth(s, -1))
	}
}

func TestNth_PanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Nth([]int{}, 0) })
	assert.Panics(t, func() { Nth[int](nil, 3) })
}
