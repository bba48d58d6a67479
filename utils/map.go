package utils

// Map returns a new slice with the same length as src, with values transformed by f.
// If src is nil, returns nil.
func Map[T, U any](src []T, f func(T) U) []U {
	if src == nil {
		return nil
	}
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}
