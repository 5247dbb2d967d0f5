package exifdate

import (
	"io"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifTimeLayout is the fixed textual encoding of EXIF date-time values.
const exifTimeLayout = "2006:01:02 15:04:05"

// ReadResult describes how a date read ended. Everything except Found means
// "no embedded date"; the distinction only feeds console reporting.
type ReadResult int

const (
	// Found means a date was read from one of the recognized fields.
	Found ReadResult = iota
	// NoExif means the stream has no parseable EXIF block.
	NoExif
	// NoDateField means EXIF is present but carries neither date field.
	NoDateField
	// MalformedDate means a recognized field exists but its value does not
	// decode as a date-time.
	MalformedDate
)

// ReadDate returns the embedded capture date of a JPEG stream, preferring
// DateTimeOriginal and falling back to DateTime. Missing or corrupt metadata
// is not an error: the result explains what was (not) found.
func ReadDate(r io.Reader) (time.Time, ReadResult) {
	x, err := exif.Decode(r)
	if err != nil {
		return time.Time{}, NoExif
	}

	for _, tag := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime} {
		f, err := x.Get(tag)
		if err != nil {
			continue
		}

		s, err := f.StringVal()
		if err != nil {
			return time.Time{}, MalformedDate
		}

		// ASCII values may carry a trailing NUL terminator.
		t, err := time.Parse(exifTimeLayout, strings.TrimRight(s, "\x00"))
		if err != nil {
			return time.Time{}, MalformedDate
		}
		return t, Found
	}

	return time.Time{}, NoDateField
}
