package geostore

import "errors"

var (
	// ErrNotFound is returned when a record ID does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrClosed is returned when operating on a closed store.
	ErrClosed = errors.New("store closed")
	// ErrCorruptSnapshot is returned when a snapshot fails structural or
	// checksum validation.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
	// ErrInvalidMagic is returned when a snapshot does not start with the
	// expected magic number.
	ErrInvalidMagic = errors.New("invalid snapshot magic")
	// ErrUnsupportedVersion is returned for snapshot versions newer than
	// this build understands.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")
)
