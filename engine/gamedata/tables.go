// Package gamedata carries the static Battlefield map and mode dictionaries
// the monitor resolves server state against.
package gamedata

import "strings"

// Tables are the read-only lookup mappings, built once at startup. Lookups
// are total: a key missing from a table falls back instead of erroring.
type Tables struct {
	displayNames  map[string]string
	imageURLs     map[string]string
	abbreviations map[string]string
}

// Load returns the built-in tables.
func Load() *Tables {
	return &Tables{
		displayNames:  mapDisplayNames,
		imageURLs:     mapImageURLs,
		abbreviations: modeAbbreviations,
	}
}

// MapDisplayName resolves a map key to its display name, falling back to the
// key itself for maps the tables don't know.
func (t *Tables) MapDisplayName(key string) string {
	if name, ok := t.displayNames[key]; ok {
		return name
	}
	return key
}

// MapImageURL resolves a map key to its art URL, falling back to the key
// itself.
func (t *Tables) MapImageURL(key string) string {
	if url, ok := t.imageURLs[key]; ok {
		return url
	}
	return key
}

// ModeAbbreviation resolves a mode key to its short code, falling back to an
// empty overlay.
func (t *Tables) ModeAbbreviation(key string) string {
	if abbr, ok := t.abbreviations[key]; ok {
		return abbr
	}
	return ""
}

// CanonicalMapKey reduces a raw mapName to the bare lookup key. Depending on
// the API generation the field is either the key itself or a slash-delimited
// asset path ending in the key.
func CanonicalMapKey(raw string) string {
	if i := strings.LastIndex(raw, "/"); i >= 0 {
		return raw[i+1:]
	}
	return raw
}
