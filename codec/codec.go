// Package codec provides decoders that convert between wire strings and
// richer Go values. Each string-input decoder is paired with an any-input
// variant built with godecode.Compose, ready to use as a property decoder.
package codec

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/godecode"
)

// TimeRFC3339 parses RFC3339 timestamps; fractional seconds are optional.
func TimeRFC3339() godecode.Decoder[string, time.Time] {
	return godecode.FromRefinement(func(s string) (time.Time, bool) {
		t, err := time.Parse(time.RFC3339Nano, s)
		return t, err == nil
	}, "RFC3339")
}

// DateFromISOString accepts a string holding an RFC3339 timestamp.
func DateFromISOString() godecode.Decoder[any, time.Time] {
	return godecode.Compose(godecode.String(), TimeRFC3339())
}

// FormatRFC3339 is the canonical encoding read back by TimeRFC3339: UTC with
// trailing fractional zeros trimmed.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// FloatFromString parses a finite decimal or exponent number.
func FloatFromString() godecode.Decoder[string, float64] {
	return godecode.FromRefinement(func(s string) (float64, bool) {
		if strings.TrimSpace(s) != s || s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
	}, "NumberFromString")
}

// NumberFromString accepts a string holding a number.
func NumberFromString() godecode.Decoder[any, float64] {
	return godecode.Compose(godecode.String(), FloatFromString())
}

// Int accepts numbers without a fractional part that fit in an int.
func Int() godecode.Decoder[any, int] {
	return godecode.Map(
		godecode.Refine(godecode.Number(), func(f float64) bool {
			return f == math.Trunc(f) && f >= math.MinInt && f < math.MaxInt
		}, "Int"),
		func(f float64) int { return int(f) },
	)
}

// BooleanFromString accepts "true" and "false".
func BooleanFromString() godecode.Decoder[any, bool] {
	return godecode.Map(godecode.LiteralOf("true", "false"), func(s string) bool { return s == "true" })
}
