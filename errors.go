package fsarcamp

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds shared by all loaders. Callers match them with errors.Is.
var (
	// ErrNotFound reports a missing campaign, pass, or data file.
	ErrNotFound = errors.New("not found")

	// ErrFormat reports a file that exists but cannot be decoded.
	ErrFormat = errors.New("format error")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// Formatf wraps ErrFormat with a formatted message.
func Formatf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrFormat)...)
}

// PathError translates a filesystem error for path into the package error
// kinds: fs.ErrNotExist becomes ErrNotFound, everything else is returned
// unchanged.
func PathError(path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return NotFoundf("%s", path)
	}
	return err
}
