package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

// composer returns candidate component sequences for the shorthand, shortest first.
type composer func(s *property.Shorthand, vals []value.Value, optimize bool) [][]value.Value

var composers = map[string]composer{
	"margin":         composeEdge,
	"padding":        composeEdge,
	"inset":          composeEdge,
	"border-width":   composeEdge,
	"border-style":   composeEdge,
	"border-color":   composeEdge,
	"margin-inline":  composePair,
	"margin-block":   composePair,
	"padding-inline": composePair,
	"padding-block":  composePair,
	"inset-inline":   composePair,
	"inset-block":    composePair,

	"border-top":    composeSideShorthand,
	"border-right":  composeSideShorthand,
	"border-bottom": composeSideShorthand,
	"border-left":   composeSideShorthand,
	"outline":       composeSideShorthand,
	"column-rule":   composeSideShorthand,
	"border":        composeBorder,
	"border-radius": composeBorderRadius,
	"border-image":  composeBorderImage,

	"list-style":      composeListStyle,
	"text-decoration": composeNonInitial,
	"flex":            composeFlex,
	"flex-flow":       composeNonInitial,
	"columns":         composeColumns,
	"gap":             composePair,
	"overflow":        composePair,
	"place-content":   composePair,
	"place-items":     composePair,
	"place-self":      composePair,

	"background": composeLayers(composeBackgroundLayer),
	"mask":       composeLayers(composeMaskLayer),
	"animation":  composeLayers(composeAnimationLayer),
	"transition": composeLayers(composeTransitionLayer),

	"font":         composeFont,
	"font-variant": composeFontVariant,

	"grid-template": composeGridTemplate,
	"grid":          composeGrid,
	"grid-area":     composeGridRange,
	"grid-row":      composeGridRange,
	"grid-column":   composeGridRange,
}

// Compose returns the shortest shorthand value that expands to exactly the longhand values vals, which are parallel to s.Longhands. It returns false when the longhands cannot be represented by the shorthand. With optimize set, values implied by the grid grammars are left out.
func Compose(s *property.Shorthand, vals []value.Value, optimize bool) ([]value.Value, bool) {
	if len(vals) != len(s.Longhands) {
		return nil, false
	}
	wide := 0
	for _, v := range vals {
		if v.IsZero() || value.HasReference([]value.Value{v}) {
			return nil, false
		} else if value.IsCSSWide(v) {
			wide++
		}
	}
	if wide == len(vals) {
		for _, v := range vals[1:] {
			if !v.EqualFold(vals[0]) {
				return nil, false
			}
		}
		return []value.Value{vals[0]}, true
	} else if 0 < wide && !s.AllowWideToken {
		return nil, false
	}

	for _, comps := range composers[s.Name](s, vals, optimize) {
		if res, err := expand(s, comps); err == nil && !res.Pending && equalValues(res.Values, vals) {
			return comps, true
		}
	}
	return nil, false
}

func equalValues(a, b []value.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// SpacedSlash returns true for the grid shorthands, whose slashes keep their surrounding spaces in minified output.
func SpacedSlash(name string) bool {
	switch name {
	case "grid-template", "grid", "grid-area", "grid-row", "grid-column":
		return true
	}
	return false
}
