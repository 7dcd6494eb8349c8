package generator

import "errors"

// Error kinds reported for configuration failures and failed nodes.
// Wrap with fmt.Errorf("%w: ...") so callers can match on errors.Is.
var (
	// ErrInvalidPath marks a node path that is absolute or escapes the
	// base path. Raised before any filesystem mutation.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidStrategy marks an unrecognized strategy name.
	ErrInvalidStrategy = errors.New("invalid strategy")

	// ErrMissingBackupRoot marks a backup-strategy run with no
	// resolvable backup root.
	ErrMissingBackupRoot = errors.New("backup strategy requires a backup root")

	// ErrTypeMismatch marks a target that exists with the wrong kind,
	// a file where a directory was declared or vice versa.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrBackupFailed marks a node whose backup could not be taken.
	// The destructive write is skipped for that node.
	ErrBackupFailed = errors.New("backup failed")
)
