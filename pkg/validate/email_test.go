package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"reader@example.com", true},
		{"Reader.Name+books@mail.example.org", true},
		{"  reader@example.com  ", true},
		{"", false},
		{"reader", false},
		{"reader@localhost", false},
		{"Reader <reader@example.com>", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.input))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "reader@example.com", NormalizeEmail("  Reader@Example.COM "))
}
