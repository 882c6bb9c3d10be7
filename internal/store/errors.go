package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the requested id.
	ErrUserNotFound = errors.New("user not found")

	// ErrItemNotFound is returned when no item matches the requested id.
	ErrItemNotFound = errors.New("item not found")

	// ErrBookingNotFound is returned when no booking matches the requested id.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRequestNotFound is returned when no item request matches the
	// requested id.
	ErrRequestNotFound = errors.New("item request not found")

	// ErrEmailAlreadyExists is returned when an INSERT or UPDATE of a user
	// violates the unique constraint on email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known
	// driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
