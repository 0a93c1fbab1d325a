package masking

import "fmt"

// Strategy selects how a value is rendered for diagnostics.
type Strategy int

const (
	// WithType renders "*** <type> ***", revealing the type but never the content.
	WithType Strategy = iota
	// WithoutType renders "*** ***", revealing nothing.
	WithoutType
	// NoMasking renders the value's ordinary display form. Only for values
	// that are known to be non-sensitive, such as identifiers.
	NoMasking
)

// Mask renders value according to the given strategy.
func Mask[T any](value T, strategy Strategy) string {
	switch strategy {
	case WithType:
		return fmt.Sprintf("*** %T ***", value)
	case NoMasking:
		return fmt.Sprintf("%v", value)
	default:
		return "*** ***"
	}
}
