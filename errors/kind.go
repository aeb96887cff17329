// errors/kind.go
package errors

import "errors"

// Kind groups service errors by how callers should react to them.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// KindOf classifies err. Anything that does not wrap a known client-side
// sentinel is treated as internal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrInvalidEmployeeID), errors.Is(err, ErrInvalidEmployeeData):
		return KindInvalidArgument
	case errors.Is(err, ErrEmployeeNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}
