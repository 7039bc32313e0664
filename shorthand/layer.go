package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

// layer holds the values parsed from one comma-separated layer, indexed by longhand position.
type layer map[int]value.Value

func (l layer) has(i int) bool {
	_, ok := l[i]
	return ok
}

// layerParser parses one layer, last is set for the final layer.
type layerParser func(s *property.Shorthand, comps []value.Value, last bool) (layer, error)

// layerComposer emits one layer, full forces every value to be emitted.
type layerComposer func(s *property.Shorthand, l layer, last, full bool) []value.Value

// isLayered returns false for the one longhand that only the final layer may set.
func isLayered(longhand string) bool {
	return longhand != "background-color"
}

func expandLayers(parse layerParser) expander {
	return func(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
		layers := value.SplitComma(comps)
		items := make([][]value.Value, len(s.Longhands))
		for i, comps := range layers {
			if len(comps) == 0 {
				return nil, syntaxError("empty layer")
			}
			l, err := parse(s, comps, i == len(layers)-1)
			if err != nil {
				return nil, err
			}
			for j := range s.Longhands {
				v, ok := l[j]
				if !ok {
					v = s.Initial[j]
				}
				items[j] = append(items[j], v)
			}
		}

		vals := make([]value.Value, len(s.Longhands))
		for j, longhand := range s.Longhands {
			if isLayered(longhand) {
				vals[j] = value.NewList(value.Comma, items[j]...)
			} else {
				vals[j] = items[j][len(items[j])-1]
			}
		}
		return vals, nil
	}
}

func composeLayers(compose layerComposer) composer {
	return func(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
		n := -1
		for j, longhand := range s.Longhands {
			if isLayered(longhand) {
				if m := len(vals[j].Split(value.Comma)); n == -1 {
					n = m
				} else if m != n {
					return nil
				}
			}
		}

		candidates := [][]value.Value{}
		for _, full := range []bool{false, true} {
			comps := []value.Value{}
			for k := 0; k < n; k++ {
				l := layer{}
				for j, longhand := range s.Longhands {
					if isLayered(longhand) {
						l[j] = vals[j].Split(value.Comma)[k]
					} else if k == n-1 {
						l[j] = vals[j]
					}
				}
				if 0 < k {
					comps = append(comps, value.Value{Kind: value.Operator, Text: ","})
				}
				comps = append(comps, compose(s, l, k == n-1, full)...)
			}
			candidates = append(candidates, comps)
		}
		return candidates
	}
}

// emit appends the value of longhand i when it is not initial or when full is set.
func emit(comps []value.Value, s *property.Shorthand, l layer, i int, full bool) []value.Value {
	if v, ok := l[i]; ok && (full || !v.Equal(s.Initial[i])) {
		return append(comps, v.Components()...)
	}
	return comps
}

var positionKeywords = []string{"left", "right", "top", "bottom", "center"}

func isPositionToken(v value.Value) bool {
	return value.IsLengthPercentage(v) || value.IsKeyword(v, positionKeywords...)
}

// positionLength returns the number of leading tokens that form a position.
func positionLength(comps []value.Value) int {
	n := 0
	for n < len(comps) && n < 4 && isPositionToken(comps[n]) {
		n++
	}
	return n
}

func isSizeToken(v value.Value) bool {
	return value.IsLengthPercentage(v) && value.IsNonNegative(v) || v.Is("auto")
}

// sizeLength returns the number of leading tokens that form a background or mask size.
func sizeLength(comps []value.Value) int {
	if 0 < len(comps) && value.IsKeyword(comps[0], "cover", "contain") {
		return 1
	}
	n := 0
	for n < len(comps) && n < 2 && isSizeToken(comps[n]) {
		n++
	}
	return n
}

var repeatKeywords = []string{"repeat", "space", "round", "no-repeat"}

// repeatLength returns the number of leading tokens that form a repeat style.
func repeatLength(comps []value.Value) int {
	if len(comps) == 0 {
		return 0
	} else if value.IsKeyword(comps[0], "repeat-x", "repeat-y") {
		return 1
	} else if !value.IsKeyword(comps[0], repeatKeywords...) {
		return 0
	} else if 1 < len(comps) && value.IsKeyword(comps[1], repeatKeywords...) {
		return 2
	}
	return 1
}

// parsePositionSize parses <position> [/ <size>]? at the start of comps and returns the number of tokens consumed.
func parsePositionSize(comps []value.Value, l layer, position, size int) (int, error) {
	n := positionLength(comps)
	l[position] = value.NewList(value.Space, comps[:n]...)
	if n < len(comps) && comps[n].IsOperator("/") {
		m := sizeLength(comps[n+1:])
		if m == 0 {
			return 0, incompleteError("missing size after slash")
		}
		l[size] = value.NewList(value.Space, comps[n+1:n+1+m]...)
		n += 1 + m
	}
	return n, nil
}

// composePositionSize emits position and size, the position is required before a size.
func composePositionSize(comps []value.Value, s *property.Shorthand, l layer, position, size int, full bool) []value.Value {
	hasSize := full || !l[size].Equal(s.Initial[size])
	if hasSize || !l[position].Equal(s.Initial[position]) {
		comps = append(comps, l[position].Components()...)
	}
	if hasSize {
		comps = append(comps, value.Value{Kind: value.Operator, Text: "/"})
		comps = append(comps, l[size].Components()...)
	}
	return comps
}
