package qr

import (
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardEncoder(t *testing.T) {
	m, err := standardEncoder{}.Encode("hello", Highest)
	require.NoError(t, err)

	// Five bytes at the highest tier fit a version 1 symbol.
	assert.Equal(t, 21, m.Size())
	for _, row := range m {
		assert.Len(t, row, m.Size())
	}

	// Top-left finder pattern corner.
	assert.True(t, m.Filled(0, 0))
}

func TestMatrixFilledOutOfBounds(t *testing.T) {
	m := Matrix{{true}}

	assert.True(t, m.Filled(0, 0))
	assert.False(t, m.Filled(-1, 0))
	assert.False(t, m.Filled(0, -1))
	assert.False(t, m.Filled(1, 0))
	assert.False(t, m.Filled(0, 1))
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    RecoveryLevel
		wantErr bool
	}{
		{in: "low", want: Low},
		{in: "medium", want: Medium},
		{in: "high", want: High},
		{in: "Highest", want: Highest},
		{in: "maximum", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRecoveryLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToRecovery(t *testing.T) {
	assert.Equal(t, qrcode.Low, toRecovery(Low))
	assert.Equal(t, qrcode.Medium, toRecovery(Medium))
	assert.Equal(t, qrcode.High, toRecovery(High))
	assert.Equal(t, qrcode.Highest, toRecovery(Highest))
}
