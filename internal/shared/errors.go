package shared

import "fmt"

var (
	// Identity errors
	ErrDuplicateIdentity  = fmt.Errorf("username or email already registered")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")

	// Playlist errors
	ErrEmptyName      = fmt.Errorf("name must not be empty")
	ErrDuplicateEntry = fmt.Errorf("song already in playlist")

	// ErrNotFound covers references to rows that do not exist
	// (missing playlist, song, or user).
	ErrNotFound = fmt.Errorf("not found")

	// ErrStorage wraps store faults not otherwise classified.
	ErrStorage = fmt.Errorf("storage failure")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)

// StorageError wraps an unclassified store fault so callers can match
// [ErrStorage] with errors.Is while keeping the driver error inspectable.
func StorageError(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}
