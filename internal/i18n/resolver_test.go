package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBundle() Bundle {
	return Bundle{
		"en": {
			"calendar": {
				"getEvents":     "Get Calendar Events",
				"getEventsDesc": "Fetch events and shifts from the calendar",
			},
			"categories": {
				"calendar": "Calendar",
			},
		},
		"fr": {
			"calendar": {
				"getEvents": "Consulter le calendrier",
			},
		},
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		raw      string
		expected Key
	}{
		{"serviceTree:calendar.getEvents", Key{Namespace: "calendar", Leaf: "getEvents"}},
		{"serviceTree:categories.calendar", Key{Namespace: "categories", Leaf: "calendar"}},
		{"calendar.getEvents", Key{Namespace: "calendar", Leaf: "getEvents"}},
		{"serviceTree:plain", Key{Leaf: "plain"}},
		{"plain", Key{Leaf: "plain"}},
		{"", Key{}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseKey(tt.raw), "raw %q", tt.raw)
	}
}

func TestResolve(t *testing.T) {
	r := NewResolver(testBundle(), "en")

	key := NewKey("calendar", "getEvents")
	assert.Equal(t, "Get Calendar Events", r.Resolve(key, "en", "calendar.getEvents"))
	assert.Equal(t, "Consulter le calendrier", r.Resolve(key, "fr", "calendar.getEvents"))
}

func TestResolveFallbackLanguage(t *testing.T) {
	r := NewResolver(testBundle(), "en")

	// German bundle is absent entirely: fall through to English.
	key := NewKey("calendar", "getEvents")
	assert.Equal(t, "Get Calendar Events", r.Resolve(key, "de", "calendar.getEvents"))

	// French is present but misses this leaf: fall through to English.
	desc := NewKey("calendar", "getEventsDesc")
	assert.Equal(t, "Fetch events and shifts from the calendar", r.Resolve(desc, "fr", "x"))
}

func TestResolveFallbackString(t *testing.T) {
	r := NewResolver(testBundle(), "en")

	missing := NewKey("payroll", "createRequest")
	assert.Equal(t, "payroll.createRequest", r.Resolve(missing, "en", "payroll.createRequest"))

	empty := NewResolver(nil, "")
	assert.Equal(t, "fallback", empty.Resolve(missing, "en", "fallback"))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "calendar.getEvents", Key{Namespace: "calendar", Leaf: "getEvents"}.String())
	assert.Equal(t, "plain", Key{Leaf: "plain"}.String())
	assert.True(t, Key{}.IsZero())
	assert.False(t, NewKey("a", "b").IsZero())
}
