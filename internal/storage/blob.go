// ABOUTME: Blob storage interface for string-keyed JSON persistence.
// ABOUTME: Defines the contract the food log and profile stores are built on.
package storage

import "context"

// Blob is a string-to-string key/value persistence capability. Values are
// JSON-encoded by the callers; this layer treats them as opaque.
// Implementations must be safe for concurrent use.
type Blob interface {
	// Get returns the value for key. found is false when the key is absent;
	// an error indicates an underlying I/O failure, not a miss.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error

	// Close releases underlying resources.
	Close() error
}

// StorageError wraps an underlying persistence failure with the operation
// and key that triggered it. Failures propagate to the caller; nothing in
// this layer retries.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return "storage " + e.Op + " " + e.Key + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// wrapErr wraps err in a StorageError, passing nil through.
func wrapErr(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Key: key, Err: err}
}
