package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "four digit year", input: "25.12.2024", want: "25.12.2024"},
		{name: "two digit year", input: "10.01.26", want: "10.01.2026"},
		{name: "two digit year before pivot", input: "01.03.68", want: "01.03.2068"},
		{name: "two digit year at pivot", input: "01.03.69", want: "01.03.1969"},
		{name: "single digit day and month", input: "1.2.2025", want: "01.02.2025"},
		{name: "surrounding spaces", input: "  05.06.2025 ", want: "05.06.2025"},
		{name: "leap day", input: "29.02.2024", want: "29.02.2024"},
		{name: "february 31", input: "31.02.2024", wantErr: true},
		{name: "april 31", input: "31.04.2025", wantErr: true},
		{name: "not a leap year", input: "29.02.2025", wantErr: true},
		{name: "month 13", input: "01.13.2025", wantErr: true},
		{name: "iso format", input: "2025-01-10", wantErr: true},
		{name: "three digit year", input: "01.01.202", wantErr: true},
		{name: "trailing text", input: "01.01.2025 noon", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate_IsIdempotent(t *testing.T) {
	for _, input := range []string{"10.01.26", "3.4.2027", "31.12.99"} {
		first, err := NormalizeDate(input)
		require.NoError(t, err)
		second, err := NormalizeDate(first)
		require.NoError(t, err)
		assert.Equal(t, first, second, input)
	}
}

func TestOrderable(t *testing.T) {
	assert.True(t, Orderable("01.01.2025").Before(Orderable("10.01.2025")))
	assert.True(t, Orderable("31.12.2024").Before(Orderable("01.01.25")))
	assert.Equal(t, Orderable("10.01.2025"), Orderable("10.01.25"))

	broken := Orderable("someday")
	assert.True(t, Orderable("31.12.2999").Before(broken))
	assert.Equal(t, broken, Orderable(""))
}

func TestTodayAndTimestamp(t *testing.T) {
	now := time.Date(2025, time.March, 7, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "07.03.2025", Today(now))
	assert.Equal(t, "07.03.2025 09:05", Timestamp(now))
}
