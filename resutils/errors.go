package resutils

import "github.com/pkg/errors"

var (
	// ErrResourceUnavailable is returned when a requested configuration cannot be served because a
	// required resource is already claimed, or because no free resource of a required kind exists.
	// It is always returned before any state has been changed.
	ErrResourceUnavailable error = errors.New("required display resource is unavailable")
	// ErrDuplicateResource is returned when a resource with an identity already present in a pool
	// is added to it
	ErrDuplicateResource error = errors.New("a resource with this identity is already present")
	// ErrUnknownResource is returned when an identity does not name any resource in a pool
	ErrUnknownResource error = errors.New("no resource with this identity is present")
	// ErrInvalidPath is returned when a display path index or link index is out of range
	ErrInvalidPath error = errors.New("display path or link index is out of range")
)
