package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when nothing is stored under the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSealingValue is returned when a value cannot be encrypted before
	// being written.
	ErrSealingValue = errors.New("failed to seal value")

	// ErrOpeningValue is returned when a stored value cannot be decrypted,
	// usually because the storage secret changed.
	ErrOpeningValue = errors.New("failed to open stored value")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
