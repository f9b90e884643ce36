// Package exc reduces per-channel exc files to rounded mean absolute errors.
package exc

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"exc-aggregator/fsys"
	"exc-aggregator/tracker"
)

const (
	valueField = 2
	precision  = 3
)

var (
	// Sign, digits with an optional decimal point, optional exponent. Nothing else.
	numberPattern = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)

	// Largest magnitude a 96-bit .NET decimal can hold.
	maxValue = decimal.RequireFromString("79228162514264337593543950335")

	two  = decimal.NewFromInt(2)
	unit = decimal.New(1, -precision)
)

func ParseValue(field string) (decimal.Decimal, error) {
	if !numberPattern.MatchString(field) {
		return decimal.Zero, fmt.Errorf("%w: %q", tracker.ErrParse, field)
	}
	v, err := decimal.NewFromString(field)
	if err != nil || v.Abs().GreaterThan(maxValue) {
		return decimal.Zero, fmt.Errorf("%w: %q", tracker.ErrParse, field)
	}
	return v, nil
}

// meanHalfEven divides sum by n exactly and rounds half to even at three
// decimals. The remainder from QuoRem decides the rounding, so no
// intermediate quotient is rounded first.
func meanHalfEven(sum decimal.Decimal, n int) decimal.Decimal {
	d := decimal.NewFromInt(int64(n))
	q, r := sum.QuoRem(d, precision)
	switch r.Mul(two).Cmp(d.Mul(unit)) {
	case 1:
		q = q.Add(unit)
	case 0:
		if !q.Shift(precision).Mod(two).IsZero() {
			q = q.Add(unit)
		}
	}
	return q
}

// ChannelAverage returns the mean absolute value of the third tab separated
// field over every line of path, rounded half to even at three decimals.
func ChannelAverage(f fsys.FS, path string) (decimal.Decimal, error) {
	lines, err := f.ReadLines(path)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: read %s: %w", tracker.ErrIO, path, err)
	}
	if len(lines) == 0 {
		return decimal.Zero, fmt.Errorf("%w: %s", tracker.ErrEmptyInput, path)
	}

	sum := decimal.Zero
	for i, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) <= valueField {
			return decimal.Zero, fmt.Errorf("%w: %s line %d: %d fields", tracker.ErrParse, path, i+1, len(fields))
		}
		v, err := ParseValue(fields[valueField])
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s line %d: %w", path, i+1, err)
		}
		sum = sum.Add(v.Abs())
	}
	return meanHalfEven(sum, len(lines)), nil
}

// Reduce computes the channel aggregate of one data run folder.
func Reduce(f fsys.FS, folder string) (tracker.ChannelAggregate, error) {
	var vals [tracker.Channels]decimal.Decimal
	for ch := range vals {
		v, err := ChannelAverage(f, filepath.Join(folder, tracker.ChannelFile(ch)))
		if err != nil {
			return tracker.ChannelAggregate{}, err
		}
		vals[ch] = v
	}
	return tracker.ChannelAggregate{Res0: vals[0], Res1: vals[1], Res2: vals[2]}, nil
}
