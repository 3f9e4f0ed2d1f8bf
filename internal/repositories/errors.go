package repositories

import "errors"

var (
	// ErrNotFound indicates the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates the attempted write would violate a uniqueness constraint.
	ErrConflict = errors.New("record conflict")
	// ErrAlreadyViewed indicates the snap has already consumed its single view.
	ErrAlreadyViewed = errors.New("snap already viewed")
)
