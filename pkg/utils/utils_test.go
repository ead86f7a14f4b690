package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKeyNormalises(t *testing.T) {
	assert.Equal(t, CacheKey("guide", "ca"), CacheKey("GUIDE", " CA "))
	assert.NotEqual(t, CacheKey("guide", "CA"), CacheKey("guide", "NY"))
	assert.Len(t, HashString("x"), 64)
}

func TestIsValidPhoneNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"555-123-4567", true},
		{"1 (555) 123-4567", true},
		{"911", false},
		{"", false},
		{"+44 20 7946 0958 12", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhoneNumber(tt.in), tt.in)
	}
}

func TestFormatPhoneNumber(t *testing.T) {
	assert.Equal(t, "(555) 123-4567", FormatPhoneNumber("5551234567"))
	assert.Equal(t, "(555) 123-4567", FormatPhoneNumber("555.123.4567"))
	assert.Equal(t, "1-877-6-PROFILE", FormatPhoneNumber("1-877-6-PROFILE"))
	assert.Equal(t, "15551234567", FormatPhoneNumber("15551234567"))
}
