package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseDirection(t *testing.T) {
	for _, in := range []string{"north", "NORTH", "North", "south", "East", "wEsT"} {
		d, ok := ParseDirection(in)
		assert.True(t, ok, "direction %q should parse", in)
		assert.True(t, d.IsStandard())
	}
	for _, in := range []string{"up", "northeast", "", "n"} {
		_, ok := ParseDirection(in)
		assert.False(t, ok, "direction %q should not parse", in)
	}
}

func TestRoom_ExitForDirection(t *testing.T) {
	r := &Room{ID: "a", Description: "A", Exits: map[Direction]string{North: "b"}}

	target, ok := r.ExitForDirection(North)
	assert.True(t, ok)
	assert.Equal(t, "b", target)

	_, ok = r.ExitForDirection(South)
	assert.False(t, ok)
}

func TestRoom_Validate(t *testing.T) {
	valid := &Room{ID: "a", Description: "A", Exits: map[Direction]string{North: "b"}, Items: []string{"key"}}
	assert.NoError(t, valid.Validate())

	cases := map[string]*Room{
		"empty id":          {Description: "A"},
		"empty description": {ID: "a"},
		"bad direction":     {ID: "a", Description: "A", Exits: map[Direction]string{"up": "b"}},
		"empty target":      {ID: "a", Description: "A", Exits: map[Direction]string{North: ""}},
		"duplicate item":    {ID: "a", Description: "A", Items: []string{"key", "key"}},
		"empty item":        {ID: "a", Description: "A", Items: []string{""}},
	}
	for name, r := range cases {
		assert.Error(t, r.Validate(), name)
	}
}

func TestPropertyParseDirectionIgnoresCase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.SampledFrom(StandardDirections).Draw(t, "dir")
		upper := rapid.SliceOfN(rapid.Bool(), len(d), len(d)).Draw(t, "upper")
		raw := []byte(d)
		for i, up := range upper {
			if up {
				raw[i] = raw[i] - 'a' + 'A'
			}
		}
		got, ok := ParseDirection(string(raw))
		if !ok || got != d {
			t.Fatalf("ParseDirection(%q) = %q, %v; want %q", raw, got, ok, d)
		}
	})
}
