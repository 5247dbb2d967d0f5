// Package filedate extracts a calendar date from image filenames that embed
// one, such as WhatsApp's IMG-20201107-WA0029.jpg.
package filedate

import (
	"regexp"
	"time"
)

// reFilenameDate matches the literal IMG token, a dash or underscore, eight
// digits, and a closing dash or underscore, anywhere in the filename.
var reFilenameDate = regexp.MustCompile(`IMG[-_](\d{8})[-_]`)

// Extract returns the date encoded in filename, at midnight. The second
// return is false when the filename carries no date or the eight digits do
// not form a valid calendar date. Only the first match is considered.
func Extract(filename string) (time.Time, bool) {
	m := reFilenameDate.FindStringSubmatch(filename)
	if m == nil {
		return time.Time{}, false
	}

	// time.Parse rejects impossible dates such as month 13 or February 30.
	t, err := time.Parse("20060102", m[1])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
