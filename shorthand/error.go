package shorthand

import (
	"errors"
	"fmt"
)

// ErrUnknownShorthand is returned when expanding a property that is not a shorthand.
var ErrUnknownShorthand = errors.New("unknown shorthand")

// ErrorKind is the category of a grammar failure.
type ErrorKind uint8

// ErrorKind values.
const (
	SyntaxError ErrorKind = iota
	ConflictError
	IncompleteError
	UnresolvedReferenceWarning
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case ConflictError:
		return "conflict error"
	case IncompleteError:
		return "incomplete error"
	case UnresolvedReferenceWarning:
		return "unresolved reference"
	}
	return fmt.Sprintf("Invalid(%d)", uint8(k))
}

// IsWarning returns true for kinds that do not void a write.
func (k ErrorKind) IsWarning() bool {
	return k == UnresolvedReferenceWarning
}

// Error is a grammar failure local to one shorthand write.
type Error struct {
	Kind     ErrorKind
	Property string
	Message  string
}

func (e *Error) Error() string {
	if e.Property == "" {
		return e.Kind.String() + ": " + e.Message
	}
	return e.Kind.String() + " in " + e.Property + ": " + e.Message
}

func syntaxError(format string, a ...interface{}) *Error {
	return &Error{Kind: SyntaxError, Message: fmt.Sprintf(format, a...)}
}

func conflictError(format string, a ...interface{}) *Error {
	return &Error{Kind: ConflictError, Message: fmt.Sprintf(format, a...)}
}

func incompleteError(format string, a ...interface{}) *Error {
	return &Error{Kind: IncompleteError, Message: fmt.Sprintf(format, a...)}
}
