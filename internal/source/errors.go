package source

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorKind classifies source acquisition failures so the CLI layer can
// render them and map them to an exit status.
type ErrorKind int

const (
	// KindIO covers read and map failures not covered by the kinds below.
	KindIO ErrorKind = iota
	// KindNotFound means the named source does not exist.
	KindNotFound
	// KindPermission means the named source exists but cannot be read.
	KindPermission
)

// String returns a human-readable name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindPermission:
		return "permission denied"
	default:
		return "i/o error"
	}
}

// Error is a typed acquisition failure for one named source. Scanning
// itself cannot fail; every error surfaced by the engine originates here.
type Error struct {
	Name string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Name, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classify wraps err with the taxonomy kind derived from the underlying
// filesystem error.
func classify(name string, err error) *Error {
	kind := KindIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = KindPermission
	}
	return &Error{Name: name, Kind: kind, Err: err}
}
