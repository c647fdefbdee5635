package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		initial     *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://api.example", "-t", "10", "-s", "/tmp/f.db", "-l", "debug"},
			expected: &Config{
				APIBaseURL:     "https://api.example",
				RequestTimeout: 10 * time.Second,
				StoragePath:    "/tmp/f.db",
				LogLevel:       "debug",
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"cmd", "-x", "1", "-t", "3"},
			expected: &Config{RequestTimeout: 3 * time.Second},
		},
		{
			name:     "absent -t keeps sub-second timeout",
			args:     []string{"cmd", "-l", "warn"},
			initial:  &Config{RequestTimeout: 1500 * time.Millisecond},
			expected: &Config{RequestTimeout: 1500 * time.Millisecond, LogLevel: "warn"},
		},
		{name: "incorrect timeout", args: []string{"cmd", "-t", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}
			if tt.initial != nil {
				*config = *tt.initial
			}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
