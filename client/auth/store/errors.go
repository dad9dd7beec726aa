package store

import "fmt"

// CorruptError reports that the credential document exists but cannot be
// parsed into the expected structure. It is never folded into an empty
// result: a broken file surfaces to the caller.
type CorruptError struct {
	Location string
	Err      error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("auth store %s is corrupt: %v", e.Location, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// WriteError reports that the atomic persist step could not complete. The
// prior on-disk state is guaranteed unchanged.
type WriteError struct {
	Location string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("auth store %s write failed: %v", e.Location, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
