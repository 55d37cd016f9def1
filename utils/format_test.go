package utils

import (
	"strings"
	"testing"
	"time"
)

func TestFormat_FormatTime(t *testing.T) {
	testCases := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "seconds", d: 42*time.Second + 500*time.Millisecond, want: "42.50s"},
		{name: "minutes", d: 3*time.Minute + 5*time.Second, want: "3m 5.00s"},
		{name: "hours", d: 2*time.Hour + 10*time.Minute, want: "2h 10m 0.00s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTime(tc.d); got != tc.want {
				t.Errorf("FormatTime(%v) expected to be %q. Got %q", tc.d, tc.want, got)
			}
		})
	}
}

func TestFormat_DecorateText(t *testing.T) {
	got := DecorateText("scan", ErrorMessage)
	if !strings.Contains(got, "scan") || !strings.Contains(got, ErrorColor) {
		t.Errorf("Decorated text expected to contain the message and the error color. Got %q", got)
	}
}
