// Package palette holds the named color tables and extended ramps used
// by the texture generators. Everything here is constructed once at init
// and never written afterwards.
package palette

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/MeKo-Tech/pixeltex/internal/colorutil"
	"github.com/MeKo-Tech/pixeltex/internal/ramp"
)

func mustHex(hex string) color.RGBA {
	c, err := colorutil.ParseHex(hex, 255)
	if err != nil {
		panic(fmt.Sprintf("palette: bad hex constant %q: %v", hex, err))
	}
	return c
}

func entry(name, hex, usage string) ramp.Entry {
	return ramp.Entry{
		Name:  name,
		Hex:   hex,
		Color: mustHex(hex),
		Usage: usage,
	}
}

// Named maps base color names to their RGBA values. Generators that only
// need a single tint look colors up here instead of carrying their own
// constants.
var Named = map[string]color.RGBA{
	"bark":       mustHex("#5D4037"),
	"clay":       mustHex("#B5651D"),
	"cobble":     mustHex("#8D8D85"),
	"deepwater":  mustHex("#1A4A73"),
	"foliage":    mustHex("#4C7A3D"),
	"hemp":       mustHex("#B8A67A"),
	"laterite":   mustHex("#B3592B"),
	"linen":      mustHex("#E6DCC3"),
	"mortar":     mustHex("#4A4A44"),
	"terracotta": mustHex("#C1603C"),
}

// NamedColors returns the names in the table in sorted order.
func NamedColors() []string {
	names := make([]string, 0, len(Named))
	for name := range Named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// The extended 5-stop ramps, darkest material variants to brightest.
var (
	Wood = ramp.Extended{
		Highlight: entry("wood-highlight", "#D7B899", "sunlit grain ridges"),
		Light:     entry("wood-light", "#B08D66", "planed surfaces"),
		Mid:       entry("wood-mid", "#8A6844", "base plank tone"),
		Dark:      entry("wood-dark", "#664A2E", "grain furrows"),
		Shadow:    entry("wood-shadow", "#43301D", "knots and joints"),
	}

	Stone = ramp.Extended{
		Highlight: entry("stone-highlight", "#C9C9C2", "wet sheen on top faces"),
		Light:     entry("stone-light", "#ABABA2", "exposed faces"),
		Mid:       entry("stone-mid", "#8D8D85", "base cobble tone"),
		Dark:      entry("stone-dark", "#6E6E66", "shaded faces"),
		Shadow:    entry("stone-shadow", "#4A4A44", "mortar and crevices"),
	}

	Terracotta = ramp.Extended{
		Highlight: entry("terracotta-highlight", "#E8A075", "tile crowns"),
		Light:     entry("terracotta-light", "#D37F54", "sun-facing curvature"),
		Mid:       entry("terracotta-mid", "#C1603C", "base fired clay"),
		Dark:      entry("terracotta-dark", "#9A4A2E", "tile troughs"),
		Shadow:    entry("terracotta-shadow", "#6E3320", "tile seams"),
	}

	WaterBlue = ramp.Extended{
		Highlight: entry("water-highlight", "#BFE3F2", "specular ripples"),
		Light:     entry("water-light", "#6FA8CE", "wave crests"),
		Mid:       entry("water-mid", "#3D7AA8", "open water"),
		Dark:      entry("water-dark", "#2A5E8A", "wave troughs"),
		Shadow:    entry("water-shadow", "#1A4A73", "depths"),
	}

	FoliageGreen = ramp.Extended{
		Highlight: entry("foliage-highlight", "#9CC474", "lit canopy"),
		Light:     entry("foliage-light", "#6F9B54", "outer leaves"),
		Mid:       entry("foliage-mid", "#4C7A3D", "base canopy"),
		Dark:      entry("foliage-dark", "#375C2C", "inner canopy"),
		Shadow:    entry("foliage-shadow", "#24401E", "undergrowth"),
	}

	Laterite = ramp.Extended{
		Highlight: entry("laterite-highlight", "#D98E5C", "dry crust"),
		Light:     entry("laterite-light", "#C67240", "packed paths"),
		Mid:       entry("laterite-mid", "#B3592B", "base soil"),
		Dark:      entry("laterite-dark", "#8C4220", "damp soil"),
		Shadow:    entry("laterite-shadow", "#5F2D16", "clumps and pits"),
	}

	Skin = ramp.Extended{
		Highlight: entry("skin-highlight", "#F2CDA9", "brow and nose"),
		Light:     entry("skin-light", "#E0B088", "lit planes"),
		Mid:       entry("skin-mid", "#C69167", "base tone"),
		Dark:      entry("skin-dark", "#A1714C", "turned planes"),
		Shadow:    entry("skin-shadow", "#754F33", "neck and sockets"),
	}

	Pepper = ramp.Extended{
		Highlight: entry("pepper-highlight", "#6D8F4C", "fresh drupes"),
		Light:     entry("pepper-light", "#50703A", "ripening clusters"),
		Mid:       entry("pepper-mid", "#3C5A2E", "vine leaves"),
		Dark:      entry("pepper-dark", "#2A421F", "dried berries"),
		Shadow:    entry("pepper-shadow", "#1B2D14", "shade under vines"),
	}

	Hemp = ramp.Extended{
		Highlight: entry("hemp-highlight", "#E0D2A8", "bleached fiber"),
		Light:     entry("hemp-light", "#CBB98A", "woven surface"),
		Mid:       entry("hemp-mid", "#B8A67A", "base cloth"),
		Dark:      entry("hemp-dark", "#94805A", "weave valleys"),
		Shadow:    entry("hemp-shadow", "#6B5B3E", "seams and folds"),
	}
)

// Ramps maps ramp names to the extended ramps above.
var Ramps = map[string]ramp.Extended{
	"wood":       Wood,
	"stone":      Stone,
	"terracotta": Terracotta,
	"water":      WaterBlue,
	"foliage":    FoliageGreen,
	"laterite":   Laterite,
	"skin":       Skin,
	"pepper":     Pepper,
	"hemp":       Hemp,
}

// RampNames returns the registered ramp names in sorted order.
func RampNames() []string {
	names := make([]string, 0, len(Ramps))
	for name := range Ramps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
