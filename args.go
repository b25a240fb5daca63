package timesince

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidArgument reports a missing or malformed template argument.
var ErrInvalidArgument = errors.New("invalid argument")

// argLayout is the required date format of the template argument,
// 24-hour time.
const argLayout = "2006-01-02 15:04"

// TimeSince is the template-function entry point. args carries the reference
// date and an optional language code, comma-separated:
//
//	"2020-01-01 14:00"
//	"2020-01-01 14:00,de"
//
// The date is interpreted in the process-local time zone and the language
// defaults to "en" when absent. The argument is taken verbatim: no
// whitespace is trimmed around the comma.
func TimeSince(photoDate time.Time, args string) (string, error) {
	return builtin.TimeSince(photoDate, args)
}

// TimeSince is the template-function entry point over the Formatter's own
// language table. See the package-level TimeSince.
func (f *Formatter) TimeSince(photoDate time.Time, args string) (string, error) {
	if args == "" {
		return "", fmt.Errorf("%w: need a date string in the format YYYY-MM-DD HH:MM", ErrInvalidArgument)
	}

	dateArg, language := args, "en"
	if before, after, found := strings.Cut(args, ","); found {
		dateArg, language = before, after
	}

	ref, err := time.ParseInLocation(argLayout, dateArg, time.Local)
	if err != nil {
		return "", fmt.Errorf("%w: date %q must be in the format YYYY-MM-DD HH:MM", ErrInvalidArgument, dateArg)
	}

	return f.Format(photoDate, ref, language)
}
