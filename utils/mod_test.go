package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"), "Should return the first match")
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3), "Should return -1 when missing")
}

func TestExtend(t *testing.T) {
	t.Run("does not share backing arrays between siblings", func(t *testing.T) {
		base := make([]int, 1, 8)
		base[0] = 1

		left := Extend(base, 2)
		right := Extend(base, 3)

		require.Equal(t, []int{1, 2}, left)
		require.Equal(t, []int{1, 3}, right)
		require.Equal(t, []int{1}, base, "Input path should not change")
	})

	t.Run("extending an empty path", func(t *testing.T) {
		require.Equal(t, []string{"up"}, Extend[string](nil, "up"))
	})
}
