package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

// isGridLine returns true for auto | <custom-ident> | <integer> && <custom-ident>? | span && [<integer> || <custom-ident>].
func isGridLine(comps []value.Value) bool {
	if len(comps) == 1 {
		comp := comps[0]
		if comp.Is("auto") {
			return true
		} else if comp.Is("span") {
			return false
		} else if value.IsIdent(comp) {
			return true
		}
		return comp.Kind == value.Number && value.IsInteger(comp) && comp.Num != 0
	} else if 3 < len(comps) {
		return false
	}

	var span, number, ident bool
	for _, comp := range comps {
		if comp.Is("span") && !span {
			span = true
		} else if comp.Kind == value.Number && value.IsInteger(comp) && comp.Num != 0 && !number {
			if span && comp.Num < 0 {
				return false
			}
			number = true
		} else if value.IsIdent(comp) && !comp.Is("auto") && !comp.Is("span") && !ident {
			ident = true
		} else {
			return false
		}
	}
	return number || span && ident
}

func isCustomIdent(v value.Value) bool {
	return value.IsIdent(v) && !v.Is("auto") && !v.Is("span")
}

// mirrorSources maps each position to the position it defaults from when omitted, positions are in longhand order.
var mirrorSources = map[int][]int{
	2: {-1, 0},
	4: {-1, 0, 0, 1},
}

// implied returns the value an omitted position i takes given the earlier positions.
func implied(vals []value.Value, i int) value.Value {
	src := mirrorSources[len(vals)][i]
	if isCustomIdent(vals[src]) {
		return vals[src]
	}
	return value.NewKeyword("auto")
}

// expandGridRange parses up to four (grid-area) or two (grid-row and grid-column) slash-separated grid lines. Omitted lines repeat an earlier custom identifier or are auto.
func expandGridRange(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	parts := value.SplitSlash(comps)
	if len(s.Longhands) < len(parts) {
		return nil, syntaxError("too many slashes")
	}
	vals := make([]value.Value, len(s.Longhands))
	for i, part := range parts {
		if len(part) == 0 {
			return nil, syntaxError("empty grid line")
		} else if !isGridLine(part) {
			return nil, syntaxError("invalid grid line %s", value.ComponentsString(part, false))
		}
		vals[i] = value.NewList(value.Space, part...)
	}
	for i := len(parts); i < len(vals); i++ {
		vals[i] = implied(vals, i)
	}
	return vals, nil
}

func composeGridRange(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	n := len(vals)
	for 1 < n && vals[n-1].EqualFold(implied(vals, n-1)) {
		n--
	}
	candidates := [][]value.Value{}
	for _, m := range []int{n, len(vals)} {
		comps := []value.Value{}
		for i := 0; i < m; i++ {
			if 0 < i {
				comps = append(comps, value.Value{Kind: value.Operator, Text: "/"})
			}
			comps = append(comps, vals[i].Components()...)
		}
		candidates = append(candidates, comps)
	}
	return candidates
}
