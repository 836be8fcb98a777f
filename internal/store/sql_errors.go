package store

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells the repositories how a failed statement should be reported.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable

	// UniqueViolation indicates that a unique or primary key constraint
	// rejected the statement.
	UniqueViolation

	// ForeignKeyViolation indicates that the statement referenced a missing
	// parent row.
	ForeignKeyViolation
)

// ErrorClassificator maps driver specific errors onto [ErrorClassification]
// values so repositories stay independent of the SQL backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification

	// Constraint returns a driver specific description of the violated
	// constraint, or "" when err is not a constraint violation.
	Constraint(err error) string
}
