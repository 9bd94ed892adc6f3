package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckMultiplyOverflow(t *testing.T) {
	tests := []struct {
		name    string
		a, b    uint64
		wantErr bool
	}{
		{"zero operand", 0, 12345, false},
		{"typical trace size", 240, 4, false},
		{"large but safe", math.MaxUint64 / 2, 2, false},
		{"overflow", math.MaxUint64/4 + 1, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckMultiplyOverflow(tt.a, tt.b)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSafeMultiply(t *testing.T) {
	got, err := SafeMultiply(240, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(960), got)

	_, err = SafeMultiply(math.MaxUint64, 2)
	require.Error(t, err)
}
