//go:build unit

package timeslot_test

import (
	"testing"

	"roomescape/internal/domain/timeslot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartAt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "morning", input: "10:00"},
		{name: "midnight", input: "00:00"},
		{name: "last minute", input: "23:59"},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "with seconds", input: "10:00:00", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := timeslot.ParseStartAt(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, timeslot.ErrInvalidStartAt)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, actual.String())
		})
	}
}

func TestNewStartAt(t *testing.T) {
	s, err := timeslot.NewStartAt(13, 5)
	require.NoError(t, err)
	assert.Equal(t, "13:05", s.String())

	_, err = timeslot.NewStartAt(-1, 0)
	assert.ErrorIs(t, err, timeslot.ErrInvalidStartAt)
}
