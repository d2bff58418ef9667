package domain

import (
	"errors"
	"os"
)

// Filesystem errors
var (
	// ErrNotFound indicates the requested path does not exist
	ErrNotFound = errors.New("path not found")

	// ErrPermissionDenied indicates insufficient permissions
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConflict indicates the destination already exists and overwrite is disabled
	ErrConflict = errors.New("destination exists")

	// ErrNotDirectory indicates expected a directory but got a file
	ErrNotDirectory = errors.New("not a directory")

	// ErrNotFile indicates expected a file but got a directory
	ErrNotFile = errors.New("not a file")

	// ErrIO indicates a generic read/write/hash failure
	ErrIO = errors.New("i/o failure")
)

// Configuration and input errors
var (
	// ErrConfigInvalid indicates the config file is malformed
	ErrConfigInvalid = errors.New("invalid config")

	// ErrUnsupportedAlgorithm indicates an unknown digest algorithm name
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrBadPattern indicates a glob pattern that cannot be compiled
	ErrBadPattern = errors.New("bad pattern")
)

// MapOSError converts OS errors to domain errors
func MapOSError(err error) error {
	if err == nil {
		return nil
	}
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	if os.IsPermission(err) {
		return ErrPermissionDenied
	}
	if os.IsExist(err) {
		return ErrConflict
	}
	return err
}
