package gamedata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCanonicalMapKey(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "asset path",
			raw:      "Xpack2/Levels/MP/MP_Bridge/MP_Bridge",
			expected: "MP_Bridge",
		},
		{
			name:     "bare key unchanged",
			raw:      "MP_Bridge",
			expected: "MP_Bridge",
		},
		{
			name:     "single separator",
			raw:      "Levels/MP_Amiens",
			expected: "MP_Amiens",
		},
		{
			name:     "empty string",
			raw:      "",
			expected: "",
		},
		{
			name:     "trailing separator",
			raw:      "Levels/MP/",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalMapKey(tt.raw))
		})
	}
}

// TestPropertyCanonicalMapKeyIdempotent verifies extracting a key from an
// already-extracted key is a no-op.
func TestPropertyCanonicalMapKeyIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		key := CanonicalMapKey(raw)
		assert.Equal(t, key, CanonicalMapKey(key))
		assert.False(t, strings.Contains(key, "/"), "extracted key should hold no separator")
	})
}

func TestMapDisplayName(t *testing.T) {
	tables := Load()

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "known bf1 map",
			key:      "MP_Amiens",
			expected: "Amiens",
		},
		{
			name:     "known bfv variant",
			key:      "MP_WE_Grind_Rotterdam",
			expected: "Rotterdam (Grind)",
		},
		{
			name:     "unknown map falls back to key",
			key:      "MP_DoesNotExist",
			expected: "MP_DoesNotExist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tables.MapDisplayName(tt.key))
		})
	}
}

func TestMapImageURL(t *testing.T) {
	tables := Load()

	t.Run("known map", func(t *testing.T) {
		assert.Equal(t,
			"https://cdn.gametools.network/maps/bf1/MP_Amiens_LandscapeLarge-e195589d.jpg",
			tables.MapImageURL("MP_Amiens"))
	})

	t.Run("unknown map falls back to key", func(t *testing.T) {
		assert.Equal(t, "MP_DoesNotExist", tables.MapImageURL("MP_DoesNotExist"))
	})

	t.Run("event variant reuses base art", func(t *testing.T) {
		assert.Equal(t, tables.MapImageURL("MP_Norway"), tables.MapImageURL("DK_Norway"))
	})
}

func TestModeAbbreviation(t *testing.T) {
	tables := Load()

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "conquest",
			key:      "Conquest0",
			expected: "CQ",
		},
		{
			name:     "breakthrough large",
			key:      "BreakthroughLarge0",
			expected: "OP",
		},
		{
			name:     "unknown mode falls back to empty",
			key:      "Gungame0",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tables.ModeAbbreviation(tt.key))
		})
	}
}

// TestLookupsAreTotal verifies every known key resolves to a non-empty value
// and every map with a display name also has art.
func TestLookupsAreTotal(t *testing.T) {
	tables := Load()

	for key := range mapDisplayNames {
		assert.NotEmpty(t, tables.MapDisplayName(key), "display name for %s", key)
		assert.True(t, strings.HasPrefix(tables.MapImageURL(key), "https://"),
			"art URL for %s", key)
	}
	for key := range modeAbbreviations {
		assert.NotEmpty(t, tables.ModeAbbreviation(key), "abbreviation for %s", key)
	}
}
