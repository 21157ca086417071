package fwdlist

import "github.com/pkg/errors"

// ErrEmptyContainer is returned when an operation needs at least one element
// but the list holds none.
var ErrEmptyContainer = errors.New("fwdlist: empty container")

// IsEmptyContainer reports whether err is, or wraps, ErrEmptyContainer.
func IsEmptyContainer(err error) bool {
	return errors.Is(err, ErrEmptyContainer)
}

func emptyContainer(op string) error {
	return errors.Wrap(ErrEmptyContainer, op)
}
