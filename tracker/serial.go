package tracker

import (
	"fmt"
	"regexp"
	"strings"
)

var serialPattern = regexp.MustCompile(`^(?:SN)?\d{6}$`)

// SerialNumber is the canonical six digit tracker serial, without the SN prefix.
type SerialNumber string

func ParseSerial(s string) (SerialNumber, error) {
	if !serialPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSerial, s)
	}
	return SerialNumber(strings.TrimPrefix(s, "SN")), nil
}

func IsSerial(s string) bool { return serialPattern.MatchString(s) }

func (s SerialNumber) String() string { return string(s) }

// Folder is the SN-prefixed name used for tracker directories and report files.
func (s SerialNumber) Folder() string { return "SN" + string(s) }
