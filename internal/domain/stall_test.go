package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStallLocalizedName(t *testing.T) {
	cases := []struct {
		name     string
		stall    Stall
		lang     string
		expected string
	}{
		{
			name:     "bengali preferred",
			stall:    Stall{NameBn: "রহিম চাচার টঙ", NameEn: "Rahim Chacha's Tong"},
			lang:     "bn",
			expected: "রহিম চাচার টঙ",
		},
		{
			name:     "english preferred",
			stall:    Stall{NameBn: "রহিম চাচার টঙ", NameEn: "Rahim Chacha's Tong"},
			lang:     "en",
			expected: "Rahim Chacha's Tong",
		},
		{
			name:     "bengali falls back when blank",
			stall:    Stall{NameEn: "Rahim Chacha's Tong"},
			lang:     "bn",
			expected: "Rahim Chacha's Tong",
		},
		{
			name:     "english falls back when blank",
			stall:    Stall{NameBn: "রহিম চাচার টঙ"},
			lang:     "en",
			expected: "রহিম চাচার টঙ",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.stall.LocalizedName(tc.lang))
		})
	}
}

func TestIsValidFacility(t *testing.T) {
	for _, f := range Facilities {
		assert.True(t, IsValidFacility(f))
	}

	assert.False(t, IsValidFacility("parking"))
	assert.False(t, IsValidFacility("WIFI"))
	assert.False(t, IsValidFacility(""))
}
