package masking

import "fmt"

const maskedJSON = `"*** ***"`

// Secret holds a sensitive value. Every default rendering path (fmt verbs,
// JSON marshalling) produces a masked string; the raw value is reachable
// only through Expose.
type Secret[T any] struct {
	inner T
}

func NewSecret[T any](value T) Secret[T] {
	return Secret[T]{inner: value}
}

// Expose returns the wrapped value. Call sites are the audit surface for
// secret usage, so keep them close to where the value is actually needed.
func (s Secret[T]) Expose() T {
	return s.inner
}

// Masked renders the wrapped value under the given strategy.
func (s Secret[T]) Masked(strategy Strategy) string {
	return Mask(s.inner, strategy)
}

func (s Secret[T]) String() string {
	return Mask(s.inner, WithType)
}

func (s Secret[T]) GoString() string {
	return Mask(s.inner, WithType)
}

func (s Secret[T]) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(s.String()))
}

// MarshalJSON always emits a masked literal. Types that legitimately need to
// persist a secret must marshal via Expose explicitly.
func (s Secret[T]) MarshalJSON() ([]byte, error) {
	return []byte(maskedJSON), nil
}
