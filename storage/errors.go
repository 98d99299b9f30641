package storage

import "fmt"

// StorageError means the backend could not be reached or failed to read/write a record
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %s", e.Op, e.Err.Error())
}

func (e *StorageError) Unwrap() error { return e.Err }

// Cause lets github.com/pkg/errors unwrap it too
func (e *StorageError) Cause() error { return e.Err }

// DataCorruptionError means a stored unit code is neither "C" nor "F".
// This is a bug in whatever wrote the record, we never coerce it to a default.
type DataCorruptionError struct {
	Owner int64
	Code  string
}

func (e *DataCorruptionError) Error() string {
	return fmt.Sprintf("corrupted settings of user %d: unrecognized temp unit %q", e.Owner, e.Code)
}
