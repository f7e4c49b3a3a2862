package vfs

// NamespaceError represents a domain error from namespace operations.
//
// These are business logic errors (entry not found, directory not empty,
// etc.) as opposed to infrastructure errors. Every namespace operation
// reports its outcome through a NamespaceError value; nothing in this
// package ever aborts the process.
//
// The shell front end translates NamespaceError messages into the lines it
// prints, surfacing Message verbatim.
type NamespaceError struct {
	// Code is the error category
	Code ErrorCode

	// Message is a human-readable error description
	Message string

	// Path is the namespace path or name related to the error (if applicable)
	Path string
}

// Error implements the error interface.
func (e *NamespaceError) Error() string {
	return e.Message
}

// CodeOf extracts the ErrorCode from an error returned by this package.
// Returns ErrUnknown for nil or foreign errors.
func CodeOf(err error) ErrorCode {
	if nsErr, ok := err.(*NamespaceError); ok {
		return nsErr.Code
	}
	return ErrUnknown
}

// ErrorCode represents the category of a namespace error.
//
// All codes are recoverable, expected, user-facing conditions. There is no
// transient-failure class: every operation is deterministic and either
// succeeds or fails immediately.
type ErrorCode int

const (
	// ErrUnknown is returned by CodeOf for errors that did not originate here
	ErrUnknown ErrorCode = iota

	// ErrNotFound indicates the requested file/directory/user doesn't exist
	ErrNotFound

	// ErrAlreadyExists indicates an entry with the name already exists
	ErrAlreadyExists

	// ErrIsDirectory indicates operation expected a file but got a directory
	ErrIsDirectory

	// ErrNotDirectory indicates operation expected a directory but got a file
	ErrNotDirectory

	// ErrNotEmpty indicates a directory is not empty (cannot be removed)
	ErrNotEmpty

	// ErrInvalidName indicates a reserved or malformed entry name ("." or "..")
	ErrInvalidName

	// ErrNameCollision indicates the moved entry's name is already taken in
	// the destination directory
	ErrNameCollision

	// ErrAtRoot indicates ".." was resolved while already at the root.
	// This is a benign outcome, distinct from ErrNotFound; callers may
	// surface it as an informational message rather than a failure.
	ErrAtRoot

	// ErrNoActiveSession indicates an operation that requires a logged-in
	// user was attempted with no active session
	ErrNoActiveSession
)
