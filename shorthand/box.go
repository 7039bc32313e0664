package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

var borderStyles = []string{"none", "hidden", "dotted", "dashed", "solid", "double", "groove", "ridge", "inset", "outset"}

func isLineWidth(v value.Value) bool {
	return value.IsLength(v) && value.IsNonNegative(v) || value.IsKeyword(v, "thin", "medium", "thick")
}

func isLineStyle(v value.Value) bool {
	return value.IsKeyword(v, borderStyles...)
}

func isMargin(v value.Value) bool {
	return value.IsLengthPercentage(v) || v.Is("auto")
}

func isPadding(v value.Value) bool {
	return value.IsLengthPercentage(v) && value.IsNonNegative(v)
}

// edgeTokens validates one positional value of the edge and logical shorthands.
var edgeTokens = map[string]func(value.Value) bool{
	"margin":         isMargin,
	"margin-inline":  isMargin,
	"margin-block":   isMargin,
	"inset":          isMargin,
	"inset-inline":   isMargin,
	"inset-block":    isMargin,
	"padding":        isPadding,
	"padding-inline": isPadding,
	"padding-block":  isPadding,
	"border-width":   isLineWidth,
	"border-style":   isLineStyle,
	"border-color":   value.IsColor,
}

func checkEdgeTokens(s *property.Shorthand, comps []value.Value) error {
	if err := expectSingle(comps); err != nil {
		return err
	}
	valid := edgeTokens[s.Name]
	for _, comp := range comps {
		if !valid(comp) && !(s.AllowWideToken && value.IsCSSWide(comp)) {
			return syntaxError("invalid value %s", comp.String())
		}
	}
	return nil
}

// expandFourSides fills top, right, bottom and left from 1 to 4 values.
func expandFourSides(comps []value.Value) []value.Value {
	vals := make([]value.Value, 4)
	copy(vals, comps)
	if len(comps) < 2 {
		vals[1] = vals[0]
	}
	if len(comps) < 3 {
		vals[2] = vals[0]
	}
	if len(comps) < 4 {
		vals[3] = vals[1]
	}
	return vals
}

// collapseFourSides is the inverse of expandFourSides and returns the shortest list of values.
func collapseFourSides(vals []value.Value) []value.Value {
	if vals[3].Equal(vals[1]) {
		if vals[2].Equal(vals[0]) {
			if vals[1].Equal(vals[0]) {
				return vals[:1]
			}
			return vals[:2]
		}
		return vals[:3]
	}
	return vals[:4]
}

func expandEdge(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if 4 < len(comps) {
		return nil, syntaxError("more than four values")
	} else if err := checkEdgeTokens(s, comps); err != nil {
		return nil, err
	}
	return expandFourSides(comps), nil
}

func composeEdge(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	return [][]value.Value{collapseFourSides(vals)}
}

func expandLogical(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if 2 < len(comps) {
		return nil, syntaxError("more than two values")
	} else if err := checkEdgeTokens(s, comps); err != nil {
		return nil, err
	}
	if len(comps) == 1 {
		return []value.Value{comps[0], comps[0]}, nil
	}
	return []value.Value{comps[0], comps[1]}, nil
}

func composePair(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	first, second := vals[0].Components(), vals[1].Components()
	return [][]value.Value{first, append(append([]value.Value{}, first...), second...)}
}

var alignPrefixes = []string{"safe", "unsafe", "first", "last", "legacy"}

var alignKeywords = []string{
	"normal", "stretch", "baseline", "center", "start", "end", "self-start", "self-end",
	"flex-start", "flex-end", "left", "right", "space-between", "space-around", "space-evenly",
	"auto", "anchor-center", "legacy",
}

var overflowKeywords = []string{"visible", "hidden", "clip", "scroll", "auto"}

// pairGroups groups components into the values of a two-value shorthand, joining prefixes like safe or first with the keyword that follows.
func pairGroups(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	groups := []value.Value{}
	for i := 0; i < len(comps); i++ {
		comp := comps[i]
		switch s.Name {
		case "gap":
			if !(comp.Is("normal") || value.IsLengthPercentage(comp) && value.IsNonNegative(comp)) {
				return nil, syntaxError("invalid gap %s", comp.String())
			}
		case "overflow":
			if !value.IsKeyword(comp, overflowKeywords...) {
				return nil, syntaxError("invalid overflow %s", comp.String())
			}
		default:
			if value.IsKeyword(comp, alignPrefixes...) && i+1 < len(comps) && value.IsKeyword(comps[i+1], alignKeywords...) && !comps[i+1].Is("legacy") {
				groups = append(groups, value.NewList(value.Space, comp, comps[i+1]))
				i++
				continue
			} else if !value.IsKeyword(comp, alignKeywords...) {
				return nil, syntaxError("invalid alignment %s", comp.String())
			}
		}
		groups = append(groups, comp)
	}
	return groups, nil
}

func expandPair(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	}
	groups, err := pairGroups(s, comps)
	if err != nil {
		return nil, err
	} else if 2 < len(groups) {
		return nil, syntaxError("more than two values")
	}

	vals := []value.Value{groups[0], groups[0]}
	if len(groups) == 2 {
		vals[1] = groups[1]
	} else if s.Name == "place-content" && isBaseline(groups[0]) {
		vals[1] = value.NewKeyword("start")
	}
	return vals, nil
}

func isBaseline(v value.Value) bool {
	return v.Is("baseline") || v.Kind == value.List && v.Items[len(v.Items)-1].Is("baseline")
}
