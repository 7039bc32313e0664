package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

// parseSide classifies up to three tokens into line width, style and color.
func parseSide(s *property.Shorthand, comps []value.Value) (width, style, color value.Value, err error) {
	if err = expectSingle(comps); err != nil {
		return
	} else if 3 < len(comps) {
		err = syntaxError("more than three values")
		return
	}
	for _, comp := range comps {
		if isLineWidth(comp) && width.IsZero() {
			width = comp
		} else if (isLineStyle(comp) || s.Name == "outline" && comp.Is("auto")) && style.IsZero() {
			style = comp
		} else if (value.IsColor(comp) || s.Name == "outline" && comp.Is("invert")) && color.IsZero() {
			color = comp
		} else {
			err = syntaxError("invalid or duplicate value %s", comp.String())
			return
		}
	}
	return
}

func expandSide(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	width, style, color, err := parseSide(s, comps)
	if err != nil {
		return nil, err
	}
	vals := s.InitialValues()
	for i, v := range []value.Value{width, style, color} {
		if !v.IsZero() {
			vals[i] = v
		}
	}
	return vals, nil
}

// composeSide emits width, style and color leaving out initial values, the style is always kept when nothing else remains.
func composeSide(initial, vals []value.Value) []value.Value {
	comps := []value.Value{}
	for i := 0; i < 3; i++ {
		if !vals[i].Equal(initial[i]) {
			comps = append(comps, vals[i].Components()...)
		}
	}
	if len(comps) == 0 {
		comps = append(comps, vals[1])
	}
	return comps
}

func composeSideShorthand(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	return [][]value.Value{composeSide(s.Initial, vals)}
}

func expandBorder(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	width, style, color, err := parseSide(s, comps)
	if err != nil {
		return nil, err
	}
	vals := s.InitialValues()
	for i, v := range []value.Value{width, style, color} {
		if !v.IsZero() {
			for j := 0; j < 4; j++ {
				vals[4*i+j] = v
			}
		}
	}
	return vals, nil
}

func composeBorder(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	side := []value.Value{vals[0], vals[4], vals[8]}
	for j := 1; j < 4; j++ {
		if !vals[j].Equal(side[0]) || !vals[4+j].Equal(side[1]) || !vals[8+j].Equal(side[2]) {
			return nil
		}
	}
	initial := []value.Value{s.Initial[0], s.Initial[4], s.Initial[8]}
	return [][]value.Value{composeSide(initial, side)}
}

func expandBorderRadius(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	parts := value.SplitSlash(comps)
	if 2 < len(parts) {
		return nil, syntaxError("more than one slash")
	}
	radii := [][]value.Value{}
	for _, part := range parts {
		if len(part) == 0 {
			return nil, incompleteError("missing radius around slash")
		} else if 4 < len(part) {
			return nil, syntaxError("more than four radii")
		}
		for _, comp := range part {
			if !value.IsLengthPercentage(comp) || !value.IsNonNegative(comp) {
				return nil, syntaxError("invalid radius %s", comp.String())
			}
		}
		radii = append(radii, expandFourSides(part))
	}

	vals := make([]value.Value, 4)
	for i := range vals {
		vals[i] = radii[0][i]
		if len(radii) == 2 && !radii[1][i].Equal(radii[0][i]) {
			vals[i] = value.NewList(value.Space, radii[0][i], radii[1][i])
		}
	}
	return vals, nil
}

func composeBorderRadius(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	horizontal := make([]value.Value, 4)
	vertical := make([]value.Value, 4)
	elliptic := false
	for i, v := range vals {
		if v.Kind == value.List {
			if v.Sep != value.Space || len(v.Items) != 2 {
				return nil
			}
			horizontal[i], vertical[i] = v.Items[0], v.Items[1]
			elliptic = true
		} else {
			horizontal[i], vertical[i] = v, v
		}
	}
	comps := append([]value.Value{}, collapseFourSides(horizontal)...)
	if elliptic {
		comps = append(comps, value.Value{Kind: value.Operator, Text: "/"})
		comps = append(comps, collapseFourSides(vertical)...)
	}
	return [][]value.Value{comps}
}

var borderImageRepeats = []string{"stretch", "repeat", "round", "space"}

// expandBorderImage parses <source> || <slice> [/ <width> | / <width>? / <outset>]? || <repeat>.
func expandBorderImage(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	vals := s.InitialValues()
	var source, repeat value.Value
	var slice, width, outset []value.Value
	hasSlice := false
	for i := 0; i < len(comps); {
		comp := comps[i]
		if (value.IsImage(comp) || comp.Is("none")) && source.IsZero() {
			source = comp
			i++
		} else if value.IsKeyword(comp, borderImageRepeats...) && repeat.IsZero() {
			n := 1
			if i+1 < len(comps) && value.IsKeyword(comps[i+1], borderImageRepeats...) {
				n = 2
			}
			repeat = value.NewList(value.Space, comps[i:i+n]...)
			i += n
		} else if isSliceToken(comp) && !hasSlice {
			hasSlice = true
			for i < len(comps) && isSliceToken(comps[i]) {
				slice = append(slice, comps[i])
				i++
			}
			if i < len(comps) && comps[i].IsOperator("/") {
				i++
				for i < len(comps) && isBorderImageWidth(comps[i]) {
					width = append(width, comps[i])
					i++
				}
				if i < len(comps) && comps[i].IsOperator("/") {
					i++
					for i < len(comps) && isBorderImageOutset(comps[i]) {
						outset = append(outset, comps[i])
						i++
					}
					if len(outset) == 0 {
						return nil, incompleteError("missing outset after slash")
					}
				} else if len(width) == 0 {
					return nil, incompleteError("missing width after slash")
				}
			}
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}

	if !source.IsZero() {
		set(s, vals, "border-image-source", source)
	}
	if 0 < len(slice) {
		if err := checkSlice(slice); err != nil {
			return nil, err
		}
		set(s, vals, "border-image-slice", value.NewList(value.Space, slice...))
	}
	if 4 < len(width) || 4 < len(outset) {
		return nil, syntaxError("more than four values")
	} else if 0 < len(width) {
		set(s, vals, "border-image-width", value.NewList(value.Space, width...))
	}
	if 0 < len(outset) {
		set(s, vals, "border-image-outset", value.NewList(value.Space, outset...))
	}
	if !repeat.IsZero() {
		set(s, vals, "border-image-repeat", repeat)
	}
	return vals, nil
}

func isSliceToken(v value.Value) bool {
	return (v.Kind == value.Number || v.Kind == value.Percentage) && value.IsNonNegative(v) || v.Is("fill")
}

func checkSlice(slice []value.Value) error {
	n, fill := 0, 0
	for i, v := range slice {
		if v.Is("fill") {
			if fill == 1 || i != 0 && i != len(slice)-1 {
				return syntaxError("misplaced fill")
			}
			fill++
		} else {
			n++
		}
	}
	if n == 0 || 4 < n {
		return syntaxError("expected one to four slice values")
	}
	return nil
}

func isBorderImageWidth(v value.Value) bool {
	return (value.IsLengthPercentage(v) || v.Kind == value.Number) && value.IsNonNegative(v) || v.Is("auto")
}

func isBorderImageOutset(v value.Value) bool {
	return (value.IsLength(v) || v.Kind == value.Number) && value.IsNonNegative(v)
}

func composeBorderImage(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	comps := []value.Value{}
	if !isInitial(s, vals, "border-image-source") {
		comps = append(comps, get(s, vals, "border-image-source"))
	}
	hasWidth := !isInitial(s, vals, "border-image-width")
	hasOutset := !isInitial(s, vals, "border-image-outset")
	if hasWidth || hasOutset || !isInitial(s, vals, "border-image-slice") {
		comps = append(comps, get(s, vals, "border-image-slice").Components()...)
		if hasWidth || hasOutset {
			comps = append(comps, value.Value{Kind: value.Operator, Text: "/"})
			if hasWidth {
				comps = append(comps, get(s, vals, "border-image-width").Components()...)
			}
			if hasOutset {
				comps = append(comps, value.Value{Kind: value.Operator, Text: "/"})
				comps = append(comps, get(s, vals, "border-image-outset").Components()...)
			}
		}
	}
	if !isInitial(s, vals, "border-image-repeat") {
		comps = append(comps, get(s, vals, "border-image-repeat").Components()...)
	}
	if len(comps) == 0 {
		comps = append(comps, get(s, vals, "border-image-source"))
	}
	return [][]value.Value{comps}
}
