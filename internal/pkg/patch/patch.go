// Package patch resolves optional request fields.
package patch

// Coalesce returns *ptr, or fallback when ptr is nil.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Map converts an optional value, keeping nil as nil.
func Map[T, U any](ptr *T, f func(T) U) *U {
	if ptr == nil {
		return nil
	}
	v := f(*ptr)
	return &v
}
