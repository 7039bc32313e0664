package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

const (
	fontStyle = iota
	fontVariantCaps
	fontWeight
	fontStretch
	fontSize
	fontLineHeight
	fontFamily
)

type systemFont struct {
	name   string
	weight string
	size   string
}

// systemFonts are the presets of the system font keywords, the family is the keyword itself.
var systemFonts = []systemFont{
	{"caption", "normal", "13px"},
	{"icon", "normal", "12px"},
	{"menu", "normal", "13px"},
	{"message-box", "normal", "13px"},
	{"small-caption", "normal", "11px"},
	{"status-bar", "normal", "12px"},
}

func lookupSystemFont(v value.Value) (systemFont, bool) {
	for _, sf := range systemFonts {
		if value.IsKeyword(v, sf.name) {
			return sf, true
		}
	}
	return systemFont{}, false
}
var fontSizes = []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large", "xxx-large", "larger", "smaller"}
var fontStretches = []string{"ultra-condensed", "extra-condensed", "condensed", "semi-condensed", "semi-expanded", "expanded", "extra-expanded", "ultra-expanded"}
var angleUnits = []string{"deg", "rad", "grad", "turn"}

func isAngle(v value.Value) bool {
	if v.Kind == value.Dimension {
		for _, unit := range angleUnits {
			if v.Unit == unit {
				return true
			}
		}
	}
	return value.IsMath(v)
}

func isFontWeight(v value.Value) bool {
	if v.Kind == value.Number {
		return 1.0 <= v.Num && v.Num <= 1000.0
	}
	return value.IsKeyword(v, "bold", "bolder", "lighter") || value.IsMath(v)
}

func isFontSize(v value.Value) bool {
	return value.IsLengthPercentage(v) && value.IsNonNegative(v) || value.IsKeyword(v, fontSizes...)
}

func isLineHeight(v value.Value) bool {
	return v.Is("normal") || (value.IsNumber(v) || value.IsLengthPercentage(v)) && value.IsNonNegative(v)
}

// parseFamilies parses a comma-separated list of family names, each a string or a sequence of identifiers.
func parseFamilies(comps []value.Value) (value.Value, error) {
	families := []value.Value{}
	for _, family := range value.SplitComma(comps) {
		if len(family) == 0 {
			return value.Value{}, syntaxError("empty font family")
		} else if len(family) == 1 && value.IsString(family[0]) {
			families = append(families, family[0])
			continue
		}
		for _, comp := range family {
			if !value.IsIdent(comp) || value.IsCSSWide(comp) {
				return value.Value{}, syntaxError("invalid font family %s", comp.String())
			}
		}
		families = append(families, value.NewList(value.Space, family...))
	}
	return value.NewList(value.Comma, families...), nil
}

// expandFont parses [<style> || <variant-caps> || <weight> || <stretch>]? <size> [/ <line-height>]? <family> | <system-font>.
func expandFont(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	vals := s.InitialValues()
	if len(comps) == 1 {
		if sf, ok := lookupSystemFont(comps[0]); ok {
			vals[fontWeight] = value.NewKeyword(sf.weight)
			vals[fontSize] = value.MustParse(sf.size)
			vals[fontFamily] = value.NewKeyword(sf.name)
			return vals, nil
		}
	}

	i, n := 0, 0
	seen := map[int]bool{}
	for ; i < len(comps) && n < 4; n++ {
		comp := comps[i]
		if comp.Is("normal") {
			// normal matches whichever slot is not yet set
		} else if value.IsKeyword(comp, "italic", "oblique") && !seen[fontStyle] {
			seen[fontStyle] = true
			vals[fontStyle] = comp
			if comp.Is("oblique") && i+1 < len(comps) && isAngle(comps[i+1]) {
				vals[fontStyle] = value.NewList(value.Space, comp, comps[i+1])
				i++
			}
		} else if comp.Is("small-caps") && !seen[fontVariantCaps] {
			seen[fontVariantCaps] = true
			vals[fontVariantCaps] = comp
		} else if isFontWeight(comp) && !seen[fontWeight] {
			seen[fontWeight] = true
			vals[fontWeight] = comp
		} else if value.IsKeyword(comp, fontStretches...) && !seen[fontStretch] {
			seen[fontStretch] = true
			vals[fontStretch] = comp
		} else {
			break
		}
		i++
	}

	if len(comps) <= i || comps[i].Kind == value.Operator {
		return nil, incompleteError("missing font size")
	} else if !isFontSize(comps[i]) {
		if isFontWeight(comps[i]) || value.IsKeyword(comps[i], fontStretches...) || value.IsKeyword(comps[i], "normal", "italic", "oblique", "small-caps") {
			return nil, syntaxError("invalid or duplicate value %s", comps[i].String())
		}
		return nil, incompleteError("missing font size")
	}
	vals[fontSize] = comps[i]
	i++

	if i < len(comps) && comps[i].IsOperator("/") {
		if len(comps) <= i+1 || !isLineHeight(comps[i+1]) {
			return nil, incompleteError("missing line height after slash")
		}
		vals[fontLineHeight] = comps[i+1]
		i += 2
	}

	if len(comps) <= i {
		return nil, incompleteError("missing font family")
	}
	family, err := parseFamilies(comps[i:])
	if err != nil {
		return nil, err
	}
	vals[fontFamily] = family
	return vals, nil
}

func composeFont(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	for i := fontFamily + 1; i < len(vals); i++ {
		if !vals[i].Equal(s.Initial[i]) {
			return nil
		}
	}
	candidates := [][]value.Value{}
	if sf, ok := lookupSystemFont(vals[fontFamily]); ok {
		system := vals[fontWeight].Is(sf.weight) && vals[fontSize].Equal(value.MustParse(sf.size))
		for _, i := range []int{fontStyle, fontVariantCaps, fontStretch, fontLineHeight} {
			system = system && vals[i].Equal(s.Initial[i])
		}
		if system {
			candidates = append(candidates, []value.Value{vals[fontFamily]})
		}
	}

	comps := []value.Value{}
	for i := fontStyle; i <= fontStretch; i++ {
		if !vals[i].Is("normal") {
			comps = append(comps, vals[i].Components()...)
		}
	}
	comps = append(comps, vals[fontSize])
	if !vals[fontLineHeight].Is("normal") {
		comps = append(comps, value.Value{Kind: value.Operator, Text: "/"}, vals[fontLineHeight])
	}
	comps = append(comps, vals[fontFamily].Components()...)
	return append(candidates, comps)
}

type variantGroup struct {
	axis     int
	keywords []string
}

var variantGroups = []variantGroup{
	{0, []string{"small-caps", "all-small-caps", "petite-caps", "all-petite-caps", "unicase", "titling-caps"}},
	{1, []string{"common-ligatures", "no-common-ligatures"}},
	{1, []string{"discretionary-ligatures", "no-discretionary-ligatures"}},
	{1, []string{"historical-ligatures", "no-historical-ligatures"}},
	{1, []string{"contextual", "no-contextual"}},
	{2, []string{"sub", "super"}},
	{3, []string{"lining-nums", "oldstyle-nums"}},
	{3, []string{"proportional-nums", "tabular-nums"}},
	{3, []string{"diagonal-fractions", "stacked-fractions"}},
	{3, []string{"ordinal"}},
	{3, []string{"slashed-zero"}},
	{4, []string{"historical-forms"}},
	{5, []string{"jis78", "jis83", "jis90", "jis04", "simplified", "traditional"}},
	{5, []string{"full-width", "proportional-width"}},
	{5, []string{"ruby"}},
}

var alternateFunctions = []string{"stylistic", "styleset", "character-variant", "swash", "ornaments", "annotation"}

// findVariantGroup returns the group index and axis into variantGroups for v, alternate functions get an index per function past the keyword groups.
func findVariantGroup(v value.Value) (int, int) {
	for i, g := range variantGroups {
		if value.IsKeyword(v, g.keywords...) {
			return i, g.axis
		}
	}
	for i, name := range alternateFunctions {
		if v.Name() == name {
			return len(variantGroups) + i, 4
		}
	}
	return -1, -1
}

func expandFontVariant(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	}
	vals := s.InitialValues()
	if len(comps) == 1 && comps[0].Is("normal") {
		return vals, nil
	} else if len(comps) == 1 && comps[0].Is("none") {
		vals[1] = comps[0]
		return vals, nil
	}

	used := map[int]bool{}
	axes := make([][]value.Value, len(vals))
	for _, comp := range comps {
		group, axis := findVariantGroup(comp)
		if group == -1 {
			return nil, syntaxError("invalid value %s", comp.String())
		} else if used[group] {
			return nil, syntaxError("duplicate value %s", comp.String())
		}
		used[group] = true
		axes[axis] = append(axes[axis], comp)
	}
	for i, axis := range axes {
		if 0 < len(axis) {
			vals[i] = value.NewList(value.Space, axis...)
		}
	}
	return vals, nil
}

func composeFontVariant(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	comps := []value.Value{}
	for i, v := range vals {
		if v.Is("none") && i == 1 {
			comps = append(comps, v)
		} else if !v.Is("normal") {
			comps = append(comps, v.Components()...)
		}
	}
	if len(comps) == 0 {
		comps = append(comps, vals[0])
	}
	return [][]value.Value{comps}
}
