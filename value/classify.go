package value

import (
	"strings"
)

var cssWideKeywords = map[string]bool{
	"initial":      true,
	"inherit":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
}

var lengthUnits = map[string]bool{
	"em": true, "rem": true, "ex": true, "rex": true, "cap": true, "rcap": true, "ch": true, "rch": true,
	"ic": true, "ric": true, "lh": true, "rlh": true,
	"vw": true, "vh": true, "vi": true, "vb": true, "vmin": true, "vmax": true,
	"svw": true, "svh": true, "svi": true, "svb": true, "svmin": true, "svmax": true,
	"lvw": true, "lvh": true, "lvi": true, "lvb": true, "lvmin": true, "lvmax": true,
	"dvw": true, "dvh": true, "dvi": true, "dvb": true, "dvmin": true, "dvmax": true,
	"cqw": true, "cqh": true, "cqi": true, "cqb": true, "cqmin": true, "cqmax": true,
	"px": true, "cm": true, "mm": true, "q": true, "in": true, "pt": true, "pc": true,
}

var mathFunctions = map[string]bool{
	"calc": true, "min": true, "max": true, "clamp": true, "round": true, "mod": true, "rem": true,
	"abs": true, "sign": true, "sin": true, "cos": true, "tan": true, "asin": true, "acos": true,
	"atan": true, "atan2": true, "pow": true, "sqrt": true, "hypot": true, "log": true, "exp": true,
}

var colorFunctions = map[string]bool{
	"rgb": true, "rgba": true, "hsl": true, "hsla": true, "hwb": true, "lab": true, "lch": true,
	"oklab": true, "oklch": true, "color": true, "color-mix": true, "light-dark": true, "device-cmyk": true,
}

var imageFunctions = map[string]bool{
	"url": true, "image": true, "image-set": true, "cross-fade": true, "element": true, "paint": true,
	"linear-gradient": true, "radial-gradient": true, "conic-gradient": true,
	"repeating-linear-gradient": true, "repeating-radial-gradient": true, "repeating-conic-gradient": true,
	"gradient": true, // -webkit-gradient
}

var referenceFunctions = map[string]bool{
	"var": true,
	"env": true,
}

// unprefix removes a vendor prefix such as -webkit- from a function name.
func unprefix(name string) (string, bool) {
	if 1 < len(name) && name[0] == '-' && name[1] != '-' {
		if i := strings.IndexByte(name[1:], '-'); i != -1 {
			return name[i+2:], true
		}
	}
	return name, false
}

// IsCSSWide returns true for the CSS-wide keywords initial, inherit, unset, revert and revert-layer.
func IsCSSWide(v Value) bool {
	return v.Kind == Keyword && cssWideKeywords[strings.ToLower(v.Text)]
}

// IsIdent returns true for an identifier that is not a CSS-wide keyword.
func IsIdent(v Value) bool {
	return v.Kind == Keyword && v.Text != "" && !IsCSSWide(v)
}

// IsKeyword returns true if v is any of the given identifiers.
func IsKeyword(v Value, idents ...string) bool {
	if v.Kind != Keyword {
		return false
	}
	for _, ident := range idents {
		if strings.EqualFold(v.Text, ident) {
			return true
		}
	}
	return false
}

// IsMath returns true for calc() and the other math functions, which can stand in for numbers, lengths, percentages and times.
func IsMath(v Value) bool {
	if v.Kind != Function {
		return false
	}
	name, _ := unprefix(v.Name())
	return mathFunctions[name]
}

// IsLength returns true for a length dimension, a unitless zero or a math function.
func IsLength(v Value) bool {
	switch v.Kind {
	case Dimension:
		return lengthUnits[v.Unit]
	case Number:
		return v.Num == 0
	}
	return IsMath(v)
}

// IsLengthPercentage returns true for a length or a percentage.
func IsLengthPercentage(v Value) bool {
	return v.Kind == Percentage || IsLength(v)
}

// IsNonNegative returns false for numeric values below zero.
func IsNonNegative(v Value) bool {
	switch v.Kind {
	case Dimension, Number, Percentage:
		return 0 <= v.Num
	}
	return true
}

// IsNumber returns true for a number or a math function.
func IsNumber(v Value) bool {
	return v.Kind == Number || IsMath(v)
}

// IsInteger returns true for a number without fraction.
func IsInteger(v Value) bool {
	return v.Kind == Number && !strings.ContainsAny(v.Text, ".eE") || IsMath(v)
}

// IsTime returns true for a dimension in s or ms, or a math function.
func IsTime(v Value) bool {
	if v.Kind == Dimension {
		return v.Unit == "s" || v.Unit == "ms"
	}
	return IsMath(v)
}

// IsColor returns true for hash colors, named colors, system colors, currentcolor, transparent and color functions.
func IsColor(v Value) bool {
	switch v.Kind {
	case Color:
		return true
	case Keyword:
		ident := strings.ToLower(v.Text)
		return namedColors[ident] || systemColors[ident] || ident == "currentcolor" || ident == "transparent"
	case Function:
		name, _ := unprefix(v.Name())
		return colorFunctions[name]
	}
	return false
}

// IsImage returns true for url() values and image functions such as gradients.
func IsImage(v Value) bool {
	switch v.Kind {
	case URL:
		return true
	case Function:
		name, _ := unprefix(v.Name())
		return imageFunctions[name]
	}
	return false
}

// IsString returns true for a quoted string.
func IsString(v Value) bool {
	return v.Kind == String
}

// IsReference returns true for functions whose value is only known at computed-value time: var(), env() and custom functions (--name()).
func IsReference(v Value) bool {
	if v.Kind != Function {
		return false
	}
	name := v.Name()
	return referenceFunctions[name] || strings.HasPrefix(name, "--")
}

// IsUnknownVendorFunction returns true for a vendor-prefixed function that none of the classifiers recognize.
func IsUnknownVendorFunction(v Value) bool {
	if v.Kind != Function {
		return false
	}
	name, prefixed := unprefix(v.Name())
	return prefixed && !mathFunctions[name] && !colorFunctions[name] && !imageFunctions[name] && !timingFunctions[name]
}

// HasReference returns true if any component, or any function argument at any depth, cannot be resolved before computed-value time.
func HasReference(comps []Value) bool {
	for _, comp := range comps {
		if IsReference(comp) || IsUnknownVendorFunction(comp) {
			return true
		} else if (comp.Kind == Function || comp.Kind == List || comp.Kind == LineNames) && HasReference(comp.Items) {
			return true
		}
	}
	return false
}

var timingFunctions = map[string]bool{
	"steps":        true,
	"cubic-bezier": true,
	"linear":       true,
}

// IsTimingFunction returns true for easing keywords and the steps(), cubic-bezier() and linear() functions.
func IsTimingFunction(v Value) bool {
	switch v.Kind {
	case Keyword:
		return IsKeyword(v, "ease", "linear", "ease-in", "ease-out", "ease-in-out", "step-start", "step-end")
	case Function:
		name, _ := unprefix(v.Name())
		return timingFunctions[name]
	}
	return false
}
