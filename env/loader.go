package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Sentinel causes carried by [LoadError]. Test with errors.Is.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotAFile         = errors.New("not a regular file")
)

// LoadError reports a failure to load an env file, wrapping the underlying
// cause (one of the sentinels above, a [ParseError] variant, or an I/O
// error).
type LoadError struct {
	Err  error
	Path string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load env file %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadFile reads and parses the env file at path with in-file expansion
// enabled.
func LoadFile(path string) (*Vars, error) {
	return LoadFileWithOptions(path, DefaultParseOptions())
}

// LoadFileWithOptions reads and parses the env file at path. The read is
// one-shot: the file is slurped once and never retried.
func LoadFileWithOptions(path string, opts ParseOptions) (*Vars, error) {
	info, err := os.Stat(path)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, &LoadError{Path: path, Err: ErrFileNotFound}

	case errors.Is(err, fs.ErrPermission):
		return nil, &LoadError{Path: path, Err: ErrPermissionDenied}

	case err != nil:
		return nil, &LoadError{Path: path, Err: err}

	case !info.Mode().IsRegular():
		return nil, &LoadError{Path: path, Err: ErrNotAFile}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &LoadError{Path: path, Err: ErrPermissionDenied}
		}

		return nil, &LoadError{Path: path, Err: err}
	}

	vars, err := ParseWithOptions(string(content), opts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return vars, nil
}
