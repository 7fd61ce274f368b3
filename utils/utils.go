package utils

import (
	"fmt"
	"strings"
	"time"
)

// ANSI escape sequences used by the command line output.
const (
	SuccessColor = "\x1b[92m"
	ErrorColor   = "\x1b[31m"
	DefaultColor = "\x1b[39m"
)

// FormatTime renders a duration as colon-separated d/h/m/s segments,
// truncated to whole seconds and omitting leading zero segments.
func FormatTime(d time.Duration) string {
	s := int64(d / time.Second)
	segments := []struct {
		value int64
		unit  string
	}{
		{s / 86400, "d"},
		{s / 3600 % 24, "h"},
		{s / 60 % 60, "m"},
		{s % 60, "s"},
	}
	var parts []string
	for _, seg := range segments {
		if len(parts) == 0 && seg.value == 0 && seg.unit != "s" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d%s", seg.value, seg.unit))
	}
	return strings.Join(parts, ":")
}
