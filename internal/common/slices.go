package common

func Filter[T any](slice []T, f func(T) bool) []T {
	result := []T{}
	for _, item := range slice {
		if f(item) {
			result = append(result, item)
		}
	}
	return result
}

// Unique returns the distinct keys of slice in order of first appearance,
// skipping empty keys.
func Unique[T any](slice []T, key func(T) string) []string {
	seen := map[string]bool{}
	result := []string{}
	for _, item := range slice {
		k := key(item)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, k)
	}
	return result
}
