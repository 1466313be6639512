package scaffold

import (
	"errors"
	"fmt"
)

// ErrorKind tags the three ways a scaffold run can fail.
type ErrorKind int

const (
	// InvalidSlug: the input has no usable slug. Nothing is touched.
	InvalidSlug ErrorKind = iota + 1
	// DirectoryCreateFailed: a target directory segment could not be
	// created. No file is written.
	DirectoryCreateFailed
	// FileWriteFailed: one file could not be written. Other files are unaffected.
	FileWriteFailed
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidSlug:
		return "invalid slug"
	case DirectoryCreateFailed:
		return "directory create failed"
	case FileWriteFailed:
		return "file write failed"
	default:
		return "unknown error"
	}
}

// Error is returned for every scaffold failure.
type Error struct {
	Kind    ErrorKind
	Message string
	File    string // Offending file or directory, if any
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String() + ": " + e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a scaffold Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == kind
}
