package storage

import "errors"

// Transaction errors returned by storage implementations and helpers.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that already runs inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a handle that is not transactional.
	ErrNotInTx = errors.New("not in tx")
	// ErrDryRun is returned from a WithTx callback to discard its changes on purpose.
	ErrDryRun = errors.New("dry run")
)
