package domain

import "fmt"

// MalformedInputError reports a structural invariant violation in a
// supplied outline: duplicate qualified names, a parent reference that
// names no unit in the sequence, or an unknown kind. It is not
// recoverable locally; the caller must re-parse or reject the file.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed outline: %s", e.Reason)
}
