package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by NotFoundError
var ErrNotFound = errors.New("job position not found")

// NotFoundError indicates that a job position id does not exist in the catalog
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job position not found: %s", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
