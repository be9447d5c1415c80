package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Extend returns a copy of path with item appended. The input is never
// modified, so sibling paths can share a common prefix safely.
func Extend[T any](path []T, item T) []T {
	extended := make([]T, len(path)+1)
	copy(extended, path)
	extended[len(path)] = item
	return extended
}
