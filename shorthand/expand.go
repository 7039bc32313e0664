// Package shorthand expands CSS shorthand property values into their longhands and composes longhand values back into shorthand values.
package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

// Result is the outcome of expanding a shorthand value.
type Result struct {
	Shorthand *property.Shorthand
	Values    []value.Value // parallel to Shorthand.Longhands, nil when Pending

	// Pending is set when the value contains var(), env() or a custom function, the longhands are unresolved until computed-value time
	Pending bool
	Text    string // the literal value text
}

type expander func(s *property.Shorthand, comps []value.Value) ([]value.Value, error)

var expanders = map[string]expander{
	"margin":         expandEdge,
	"padding":        expandEdge,
	"inset":          expandEdge,
	"border-width":   expandEdge,
	"border-style":   expandEdge,
	"border-color":   expandEdge,
	"margin-inline":  expandLogical,
	"margin-block":   expandLogical,
	"padding-inline": expandLogical,
	"padding-block":  expandLogical,
	"inset-inline":   expandLogical,
	"inset-block":    expandLogical,

	"border-top":    expandSide,
	"border-right":  expandSide,
	"border-bottom": expandSide,
	"border-left":   expandSide,
	"outline":       expandSide,
	"column-rule":   expandSide,
	"border":        expandBorder,
	"border-radius": expandBorderRadius,
	"border-image":  expandBorderImage,

	"list-style":      expandListStyle,
	"text-decoration": expandTextDecoration,
	"flex":            expandFlex,
	"flex-flow":       expandFlexFlow,
	"columns":         expandColumns,
	"gap":             expandPair,
	"overflow":        expandPair,
	"place-content":   expandPair,
	"place-items":     expandPair,
	"place-self":      expandPair,

	"background": expandLayers(parseBackgroundLayer),
	"mask":       expandLayers(parseMaskLayer),
	"animation":  expandLayers(parseAnimationLayer),
	"transition": expandLayers(parseTransitionLayer),

	"font":         expandFont,
	"font-variant": expandFontVariant,

	"grid-template": expandGridTemplate,
	"grid":          expandGrid,
	"grid-area":     expandGridRange,
	"grid-row":      expandGridRange,
	"grid-column":   expandGridRange,
}

// Expand expands the value of the shorthand name into its longhands. The components must not include !important. Errors are of type *Error, or ErrUnknownShorthand.
func Expand(name string, comps []value.Value) (Result, error) {
	s := property.Lookup(name)
	if s == nil {
		return Result{}, ErrUnknownShorthand
	}
	res, err := expand(s, comps)
	if err != nil {
		if e, ok := err.(*Error); ok {
			e.Property = s.Name
		}
		return Result{}, err
	}
	return res, nil
}

func expand(s *property.Shorthand, comps []value.Value) (Result, error) {
	res := Result{
		Shorthand: s,
		Text:      value.ComponentsString(comps, false),
	}
	if len(comps) == 0 {
		return res, syntaxError("empty value")
	}

	// CSS-wide keyword for the whole value is broadcast to every longhand
	if len(comps) == 1 && value.IsCSSWide(comps[0]) {
		res.Values = make([]value.Value, len(s.Longhands))
		for i := range res.Values {
			res.Values[i] = comps[0]
		}
		return res, nil
	}

	if value.HasReference(comps) {
		res.Pending = true
		return res, nil
	}

	prev := false
	for _, comp := range comps {
		wide := value.IsCSSWide(comp)
		if wide && !s.AllowWideToken {
			return res, syntaxError("%s cannot be combined with other values", comp.Text)
		} else if wide && prev {
			return res, syntaxError("consecutive CSS-wide keywords")
		}
		prev = wide
	}

	vals, err := expanders[s.Name](s, comps)
	if err != nil {
		return res, err
	}
	res.Values = vals
	return res, nil
}

// expectSingle returns an error for components that contain top-level operators.
func expectSingle(comps []value.Value) error {
	for _, comp := range comps {
		if comp.Kind == value.Operator {
			return syntaxError("unexpected %s", comp.Text)
		}
	}
	return nil
}

func set(s *property.Shorthand, vals []value.Value, longhand string, v value.Value) {
	vals[s.Index(longhand)] = v
}

func get(s *property.Shorthand, vals []value.Value, longhand string) value.Value {
	return vals[s.Index(longhand)]
}

func isInitial(s *property.Shorthand, vals []value.Value, longhand string) bool {
	i := s.Index(longhand)
	return vals[i].Equal(s.Initial[i])
}
