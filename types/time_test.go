package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"z suffix is utc", "2025-01-01T00:00:00Z", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"explicit offset", "2025-01-01T02:00:00+02:00", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"naive is taken as utc", "2025-01-01T00:00:00", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"naive with fraction", "2025-01-01T00:00:00.123456", time.Date(2025, 1, 1, 0, 0, 0, 123456000, time.UTC)},
		{"space separator", "2025-01-01 00:00:00", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	_, err := ParseTime("not-a-timestamp")
	assert.Error(t, err)

	_, err = ParseTime("")
	assert.Error(t, err)
}
