package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePreviewRows(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		expected int
	}{
		{"zero uses default", 0, 10},
		{"negative uses default", -5, 10},
		{"exact option", 25, 25},
		{"largest option", 100, 100},
		{"between options falls back", 30, 10},
		{"above largest falls back", 500, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePreviewRows(tt.in))
		})
	}
}
