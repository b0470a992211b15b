package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tongmap/tong-api/internal/domain"
)

func TestStallCacheKey(t *testing.T) {
	cases := []struct {
		name     string
		division string
		viewerID uint
		expected string
	}{
		{name: "empty division maps to all", division: "", viewerID: 0, expected: "all|0"},
		{name: "explicit all", division: "all", viewerID: 0, expected: "all|0"},
		{name: "division plus viewer", division: "Dhaka", viewerID: 42, expected: "Dhaka|42"},
		{name: "same division different viewer", division: "Dhaka", viewerID: 7, expected: "Dhaka|7"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stallCacheKey(tc.division, tc.viewerID))
		})
	}
}

func TestStallCacheGetReturnsCopy(t *testing.T) {
	cache := newStallCache()
	cache.set("all|0", []domain.Stall{{ID: 1, NameEn: "Tong"}})

	first, ok := cache.get("all|0")
	require.True(t, ok)

	first[0].NameEn = "mutated"

	second, ok := cache.get("all|0")
	require.True(t, ok)
	assert.Equal(t, "Tong", second[0].NameEn, "callers must not mutate the cached snapshot")
}

func TestStallCacheInvalidateIsIdempotent(t *testing.T) {
	cache := newStallCache()
	cache.set("all|0", []domain.Stall{{ID: 1}})
	cache.set("Dhaka|7", []domain.Stall{{ID: 2}})

	cache.invalidate()
	cache.invalidate() // invalidating an empty cache is a no-op

	_, ok := cache.get("all|0")
	assert.False(t, ok)
	_, ok = cache.get("Dhaka|7")
	assert.False(t, ok)

	cache.set("all|0", []domain.Stall{{ID: 3}})
	stalls, ok := cache.get("all|0")
	require.True(t, ok)
	assert.Equal(t, uint(3), stalls[0].ID)
}
