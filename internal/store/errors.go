package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a query or mutation targets a row that
	// does not exist (or is not visible to the requesting owner).
	ErrNotFound = errors.New("entity was not found")

	// ErrAlreadyExists is returned when an INSERT violates a unique constraint.
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrEmailAlreadyExists is returned when an account with the same email
	// is already registered. It wraps [ErrAlreadyExists].
	ErrEmailAlreadyExists = fmt.Errorf("%w: email", ErrAlreadyExists)

	// ErrUsernameAlreadyExists is returned when an account with the same
	// username is already registered. It wraps [ErrAlreadyExists].
	ErrUsernameAlreadyExists = fmt.Errorf("%w: username", ErrAlreadyExists)

	// ErrReferenceNotFound is returned when an INSERT references a parent row
	// (account, room or model) that does not exist.
	ErrReferenceNotFound = errors.New("referenced entity does not exist")

	// ErrForeignFileURL is returned by [FileStorage.Delete] for a URL that
	// the storage did not produce.
	ErrForeignFileURL = errors.New("url does not belong to file storage")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
