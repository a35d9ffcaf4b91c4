package ofx

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// OFX timestamps look like YYYYMMDDHHMMSS[.ffffff][[offset:TZID]] where the
// bracketed offset is a signed, possibly fractional, number of hours.
var dateRe = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(?:(\d{2})(\d{2})(\d{2}))?(?:\.(\d{1,6}))?\s*(?:\[([^:\]]*)(?::([^\]]*))?\])?`)

// ParseDate parses an OFX formatted date string into a UTC-relative instant
// by subtracting the annotated timezone offset. A malformed offset defaults
// to zero rather than failing. The all-zero date token parses to nil,
// meaning "no date", not an error. Trailing bytes beyond the timestamp and
// its bracket annotation are an error.
func ParseDate(value string) (*time.Time, error) {
	s := strings.TrimSpace(value)
	parts := dateRe.FindStringSubmatch(s)
	if parts == nil || len(parts[0]) != len(s) {
		return nil, errors.New("error - date string can not be parsed")
	}
	if parts[1]+parts[2]+parts[3] == "00000000" {
		return nil, nil
	}

	year, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	day, _ := strconv.Atoi(parts[3])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, errors.New("error - date string can not be parsed")
	}
	var hour, minute, second int
	if parts[4] != "" {
		hour, _ = strconv.Atoi(parts[4])
		minute, _ = strconv.Atoi(parts[5])
		second, _ = strconv.Atoi(parts[6])
		if hour > 23 || minute > 59 || second > 60 {
			return nil, errors.New("error - date string can not be parsed")
		}
	}
	var nanos int
	if parts[7] != "" {
		frac, _ := strconv.ParseFloat("0."+parts[7], 64)
		nanos = int(frac * float64(time.Second))
	}

	// The bracketed offset is hours east of UTC for the local time the
	// document was written in; subtracting it yields the UTC instant.
	var offset float64
	if parts[8] != "" {
		if v, err := strconv.ParseFloat(parts[8], 64); err == nil {
			offset = v
		}
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, nanos, time.UTC).
		Add(-time.Duration(offset * float64(time.Hour)))
	return &t, nil
}

// formatDate renders t in the OFX YYYYMMDDHHMMSS.fff form used when
// re-emitting documents.
func formatDate(t time.Time) string {
	return t.Format("20060102150405.000")
}
