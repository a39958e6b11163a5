package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "Valid uuid", input: "0b4f3c4e-6a0e-4bde-9d55-6c4b1f1a7e10"},
		{name: "Upper case uuid", input: "0B4F3C4E-6A0E-4BDE-9D55-6C4B1F1A7E10"},
		{name: "Mongo object id", input: "65a1f0c2e4b0a1b2c3d4e5f6", expectErr: true},
		{name: "Empty", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.expectErr {
				require.ErrorIs(t, err, ErrInvalidID)
				assert.True(t, id.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0b4f3c4e-6a0e-4bde-9d55-6c4b1f1a7e10", id.String())
		})
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)

	parsed, err := ParseID(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)
}
