package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrContactNotFound is returned when a contact does not exist or belongs
	// to another owner. Both cases are deliberately indistinguishable.
	ErrContactNotFound = errors.New("contact was not found")

	// ErrUnsupportedImage is returned when an avatar upload has an unknown
	// extension or cannot be decoded.
	ErrUnsupportedImage = errors.New("unsupported image")
)

// Low-level operation errors. These are returned (or wrapped) by repository
// methods when a SQL-level or file-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrSavingFile is returned when an avatar cannot be written to disk.
	ErrSavingFile = errors.New("failed to save file")
)
