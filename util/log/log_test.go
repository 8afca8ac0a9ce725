//go:build !release

package log

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	tests := []struct {
		name     string
		fn       func()
		expected string
	}{
		{
			name:     "Print",
			fn:       func() { Print("changed wallpaper") },
			expected: "changed wallpaper",
		},
		{
			name:     "Printf",
			fn:       func() { Printf("search page %d", 7) },
			expected: "search page 7",
		},
		{
			name:     "Println",
			fn:       func() { Println("tray visible") },
			expected: "tray visible",
		},
		{
			name:     "Debug",
			fn:       func() { Debug("scheduler tick") },
			expected: "[DEBUG] scheduler tick",
		},
		{
			name:     "Debugf",
			fn:       func() { Debugf("run %s", "abc") },
			expected: "[DEBUG] run abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn()
			if !strings.Contains(buf.String(), tt.expected) {
				t.Errorf("Expected log to contain %q, but got %q", tt.expected, buf.String())
			}
		})
	}
}
