package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/timelinekit/timelinekit/pkg/constants"
)

// DateTimeLayout is the layout of dates in public shapes.
const DateTimeLayout = time.RFC3339Nano

var errMissing = errors.New("value is required")

// CopyDateTime parses a public date. An empty string is an error.
func CopyDateTime(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, &InvalidFieldError{Field: field, Err: errMissing}
	}

	t, err := time.Parse(DateTimeLayout, s)
	if err != nil {
		return time.Time{}, &InvalidFieldError{Field: field, Value: s, Err: err}
	}
	return t, nil
}

// FormatDateTime renders t as a public date, in UTC.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// RequireString fails when s is empty.
func RequireString(field, s string) (string, error) {
	if s == "" {
		return "", &InvalidFieldError{Field: field, Err: errMissing}
	}
	return s, nil
}

// CopyVersion checks a public schema version against the newest supported one.
// Zero means the payload predates versioning and is read as version 1.
func CopyVersion(field string, v, supported int) (int, error) {
	switch {
	case v == 0:
		return 1, nil
	case v < 0 || v > supported:
		return 0, &InvalidFieldError{Field: field, Value: v, Err: fmt.Errorf("%w: %d", constants.ErrUnsupportedVersion, v)}
	default:
		return v, nil
	}
}
