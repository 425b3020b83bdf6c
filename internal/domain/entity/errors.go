package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced by the formatting pipeline.
var (
	ErrParse               = errors.New("json parse error")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrMissingElement      = errors.New("missing element")
	ErrHistoryEntryCorrupt = errors.New("history entry corrupt")
)

// ParseError reports text that is not valid JSON.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON Parse Error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports ErrParse as the kind of this error.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// StorageError wraps a failure of the key-value store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable (%s): %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Is reports ErrStorageUnavailable as the kind of this error.
func (e *StorageError) Is(target error) bool { return target == ErrStorageUnavailable }

// MissingElementError lists surface handles that were not provided.
type MissingElementError struct {
	Names []string
}

func (e *MissingElementError) Error() string {
	return "Missing elements: " + strings.Join(e.Names, ", ")
}

// Is reports ErrMissingElement as the kind of this error.
func (e *MissingElementError) Is(target error) bool { return target == ErrMissingElement }

// CorruptEntryError reports a history entry whose content no longer parses.
type CorruptEntryError struct {
	Content string
	Err     error
}

func (e *CorruptEntryError) Error() string {
	return fmt.Sprintf("history entry corrupt: %v", e.Err)
}

func (e *CorruptEntryError) Unwrap() error { return e.Err }

// Is reports ErrHistoryEntryCorrupt as the kind of this error.
func (e *CorruptEntryError) Is(target error) bool { return target == ErrHistoryEntryCorrupt }
