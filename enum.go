package cairn

// Enumerable is the interface implemented by types that can only be represented by enumerable, constant values.
//
// [Environment] is the canonical implementation.
type Enumerable interface {
	String() string
	Valid() error
}

var _ Enumerable = Development
