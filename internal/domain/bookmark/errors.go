package bookmark

import (
	"errors"
	"fmt"
)

// ErrGroupNotFound indicates no bookmark group is stored under the name
type ErrGroupNotFound struct {
	Name string
}

func (e *ErrGroupNotFound) Error() string {
	return fmt.Sprintf("bookmark group not found: %s", e.Name)
}

// ErrInvalidDocument indicates a bookmark document that cannot become a group
type ErrInvalidDocument struct {
	Reason string
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("invalid bookmark document: %s", e.Reason)
}

// IsNotFound reports whether err wraps an ErrGroupNotFound
func IsNotFound(err error) bool {
	var notFound *ErrGroupNotFound
	return errors.As(err, &notFound)
}
