package tracker

import (
	"errors"
	"io/fs"
)

var (
	ErrInvalidSerial  = errors.New("invalid serial number")
	ErrIncompleteData = errors.New("tracker does not have all of the required data")
	ErrParse          = errors.New("malformed exc value")
	ErrEmptyInput     = errors.New("channel file has no lines")
	ErrIO             = errors.New("io failure")
	ErrConfig         = errors.New("invalid configuration")
)

type Kind string

const (
	KindUnknown    Kind = "unknown"
	KindValidation Kind = "validation"
	KindParse      Kind = "parse"
	KindEmpty      Kind = "empty"
	KindIO         Kind = "io"
	KindConfig     Kind = "config"
)

// Classify maps an error onto the failure taxonomy. Only sentinels and
// standard library error types are inspected.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrConfig):
		return KindConfig
	case errors.Is(err, ErrInvalidSerial), errors.Is(err, ErrIncompleteData):
		return KindValidation
	case errors.Is(err, ErrParse):
		return KindParse
	case errors.Is(err, ErrEmptyInput):
		return KindEmpty
	case errors.Is(err, ErrIO):
		return KindIO
	}
	var perr *fs.PathError
	if errors.As(err, &perr) {
		return KindIO
	}
	return KindUnknown
}
