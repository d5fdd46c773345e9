package types

import "errors"

// RecordStore is the durable key/value mapping the workflow reads from and
// writes to. Values are JSON-serializable documents; each Set replaces the
// whole document under its key in one synchronous write.
type RecordStore interface {
	// Get unmarshals the value stored under key into out. When the key is
	// absent or the stored value cannot be parsed, out is left at the
	// caller-supplied default and the error is nil.
	Get(key string, out any) error

	// Set serializes value and persists it under key synchronously.
	Set(key string, value any) error

	// Attach connects the store to the backend described by config.
	// Creates the DataDir if it does not exist.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls succeed.
	// After Detach, Get and Set return ErrStoreDetached.
	Detach() error
}

// Record keys used by the workflow.
const (
	KeySurveys       = "surveys"
	KeyActivity      = "activity_log"
	KeyAccounts      = "accounts"
	KeyActiveAccount = "active_account"
)

// Record store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("record store is detached")
	ErrAlreadyAttached = errors.New("record store is already attached")
)
