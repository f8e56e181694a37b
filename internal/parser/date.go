package parser

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the canonical storage format for deadlines and event dates.
const DateLayout = "02.01.2006"

// TimestampLayout is used for created_at columns.
const TimestampLayout = "02.01.2006 15:04"

// ErrInvalidDate is returned when a date matches none of the accepted formats
// or names a day that does not exist.
var ErrInvalidDate = errors.New("invalid date format")

// Accepted input layouts in priority order. "2"/"1" accept one or two digits,
// "06" expands 69..99 to 19xx and 00..68 to 20xx.
var inputLayouts = []string{
	"2.1.2006",
	"2.1.06",
}

// maxOrderable sorts malformed dates after every real one.
var maxOrderable = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// NormalizeDate validates raw and renders it as DD.MM.YYYY.
func NormalizeDate(raw string) (string, error) {
	t, ok := parseDate(raw)
	if !ok {
		return "", ErrInvalidDate
	}
	return t.Format(DateLayout), nil
}

// Orderable returns a sort key for a stored date.
func Orderable(date string) time.Time {
	t, ok := parseDate(date)
	if !ok {
		return maxOrderable
	}
	return t
}

// Today renders now as a canonical date.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

// Timestamp renders now as a created_at value.
func Timestamp(now time.Time) string {
	return now.Format(TimestampLayout)
}

func parseDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
