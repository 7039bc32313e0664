package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

var listStylePositions = []string{"inside", "outside"}

// expandListStyle assigns a none to whichever of type and image is not otherwise specified.
func expandListStyle(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	}
	vals := s.InitialValues()
	var listType, position, image value.Value
	var none value.Value
	nones := 0
	for _, comp := range comps {
		if comp.Is("none") {
			none = comp
			nones++
		} else if value.IsKeyword(comp, listStylePositions...) && position.IsZero() {
			position = comp
		} else if value.IsImage(comp) && image.IsZero() {
			image = comp
		} else if (value.IsIdent(comp) || value.IsString(comp) || comp.Name() == "symbols") && listType.IsZero() {
			listType = comp
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}
	if listType.IsZero() && 0 < nones {
		listType = none
		nones--
	}
	if image.IsZero() && 0 < nones {
		image = none
		nones--
	}
	if 0 < nones {
		return nil, syntaxError("too many none values")
	}

	for _, v := range []struct {
		longhand string
		v        value.Value
	}{{"list-style-type", listType}, {"list-style-position", position}, {"list-style-image", image}} {
		if !v.v.IsZero() {
			set(s, vals, v.longhand, v.v)
		}
	}
	return vals, nil
}

func composeListStyle(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	listType := get(s, vals, "list-style-type")
	image := get(s, vals, "list-style-image")
	comps := []value.Value{}
	if !isInitial(s, vals, "list-style-position") {
		comps = append(comps, get(s, vals, "list-style-position"))
	}
	if listType.Is("none") && image.Is("none") {
		comps = append(comps, listType)
	} else {
		if !isInitial(s, vals, "list-style-type") {
			comps = append(comps, listType)
		}
		if !isInitial(s, vals, "list-style-image") {
			comps = append(comps, image)
		}
	}
	if len(comps) == 0 {
		comps = append(comps, listType)
	}
	return [][]value.Value{comps}
}

var textDecorationLines = []string{"underline", "overline", "line-through", "blink", "spelling-error", "grammar-error"}
var textDecorationStyles = []string{"solid", "double", "dotted", "dashed", "wavy"}

func expandTextDecoration(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	}
	vals := s.InitialValues()
	var lines []value.Value
	var style, color value.Value
	none := false
	for _, comp := range comps {
		if comp.Is("none") && !none && len(lines) == 0 {
			none = true
			lines = append(lines, comp)
		} else if value.IsKeyword(comp, textDecorationLines...) && !none {
			for _, line := range lines {
				if line.EqualFold(comp) {
					return nil, syntaxError("duplicate line %s", comp.Text)
				}
			}
			lines = append(lines, comp)
		} else if value.IsKeyword(comp, textDecorationStyles...) && style.IsZero() {
			style = comp
		} else if value.IsColor(comp) && color.IsZero() {
			color = comp
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}
	if 0 < len(lines) {
		set(s, vals, "text-decoration-line", value.NewList(value.Space, lines...))
	}
	if !style.IsZero() {
		set(s, vals, "text-decoration-style", style)
	}
	if !color.IsZero() {
		set(s, vals, "text-decoration-color", color)
	}
	return vals, nil
}

// composeNonInitial emits the longhands that differ from their initial value in order, or the first longhand when all are initial.
func composeNonInitial(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	comps := []value.Value{}
	for i := range vals {
		if !vals[i].Equal(s.Initial[i]) {
			comps = append(comps, vals[i].Components()...)
		}
	}
	if len(comps) == 0 {
		comps = append(comps, vals[0])
	}
	return [][]value.Value{comps}
}

var flexBasisKeywords = []string{"auto", "content", "min-content", "max-content", "fit-content"}

func isFlexBasis(v value.Value) bool {
	return value.IsLengthPercentage(v) && value.IsNonNegative(v) || value.IsKeyword(v, flexBasisKeywords...) || v.Name() == "fit-content"
}

func isFlexFactor(v value.Value) bool {
	return value.IsNumber(v) && value.IsNonNegative(v)
}

// expandFlex parses none | [<grow> <shrink>? || <basis>]. An omitted grow is 1 and an omitted basis is 0%.
func expandFlex(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	}
	if len(comps) == 1 && comps[0].Is("none") {
		return []value.Value{value.MustParse("0"), value.MustParse("0"), value.NewKeyword("auto")}, nil
	} else if 3 < len(comps) {
		return nil, syntaxError("more than three values")
	}

	var grow, shrink, basis value.Value
	for i, comp := range comps {
		// a unitless zero not preceded by two flex factors is a flex factor
		forcedFactor := comp.Kind == value.Number && !(!grow.IsZero() && !shrink.IsZero())
		if basis.IsZero() && !forcedFactor && isFlexBasis(comp) {
			basis = comp
		} else if grow.IsZero() && isFlexFactor(comp) {
			grow = comp
		} else if shrink.IsZero() && !grow.IsZero() && isFlexFactor(comp) && isFlexFactor(comps[i-1]) && comps[i-1].Equal(grow) {
			shrink = comp
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}
	if grow.IsZero() {
		grow = value.MustParse("1")
	}
	if shrink.IsZero() {
		shrink = value.MustParse("1")
	}
	if basis.IsZero() {
		basis = value.MustParse("0%")
	}
	return []value.Value{grow, shrink, basis}, nil
}

func composeFlex(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	grow, shrink, basis := vals[0], vals[1], vals[2]
	return [][]value.Value{
		{value.NewKeyword("none")},
		{grow},
		{basis},
		{grow, shrink},
		{grow, basis},
		{grow, shrink, basis},
	}
}

var flexDirections = []string{"row", "row-reverse", "column", "column-reverse"}
var flexWraps = []string{"nowrap", "wrap", "wrap-reverse"}

func expandFlexFlow(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	}
	vals := s.InitialValues()
	var direction, wrap value.Value
	for _, comp := range comps {
		if value.IsKeyword(comp, flexDirections...) && direction.IsZero() {
			direction = comp
		} else if value.IsKeyword(comp, flexWraps...) && wrap.IsZero() {
			wrap = comp
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}
	if !direction.IsZero() {
		vals[0] = direction
	}
	if !wrap.IsZero() {
		vals[1] = wrap
	}
	return vals, nil
}

// expandColumns parses <width> || <count> where auto fills whichever is not given.
func expandColumns(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	} else if 2 < len(comps) {
		return nil, syntaxError("more than two values")
	}
	vals := s.InitialValues()
	var width, count value.Value
	for _, comp := range comps {
		if comp.Is("auto") {
			continue
		} else if value.IsLength(comp) && comp.Kind != value.Number && width.IsZero() {
			width = comp
		} else if value.IsInteger(comp) && (comp.Kind != value.Number || 0 < comp.Num) && count.IsZero() {
			count = comp
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}
	if !width.IsZero() {
		vals[0] = width
	}
	if !count.IsZero() {
		vals[1] = count
	}
	return vals, nil
}

func composeColumns(s *property.Shorthand, vals []value.Value, _ bool) [][]value.Value {
	return append(composeNonInitial(s, vals, false), []value.Value{vals[0], vals[1]})
}
