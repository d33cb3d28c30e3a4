package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatArea(t *testing.T) {
	tests := []struct {
		name string
		m2   float64
		want string
	}{
		{"zero", 0, "0 m²"},
		{"negative stays in meters", -5, "-5 m²"},
		{"just under a hectare", 9999, "9999 m²"},
		{"exactly one hectare", 10000, "1.0 ha"},
		{"mid hectares", 123456, "12.3 ha"},
		{"exactly one square kilometer", 1000000, "100.0 ha"},
		{"just over one square kilometer", 1000001, "1.00 km²"},
		{"large burn", 2500000, "2.50 km²"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatArea(tt.m2))
		})
	}
}

func TestFormatAreaKM2(t *testing.T) {
	assert.Equal(t, "100.0 ha", FormatAreaKM2(1))
	assert.Equal(t, "4.50 km²", FormatAreaKM2(4.5))
	assert.Equal(t, "5000 m²", FormatAreaKM2(0.005))
	assert.Equal(t, "234.72 km²", FormatAreaKM2(234.7179))
}
