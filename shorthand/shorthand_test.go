package shorthand

import (
	"testing"

	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
	"github.com/tdewolff/test"
)

func expandString(t *testing.T, name, input string) (Result, error) {
	comps, err := value.Parse(input)
	test.Error(t, err)
	return Expand(name, comps)
}

func TestExpand(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{"border-width", "2px 8em", map[string]string{
			"border-top-width": "2px", "border-right-width": "8em", "border-bottom-width": "2px", "border-left-width": "8em",
		}},
		{"border-width", "2px 8em 4pt 5px", map[string]string{
			"border-top-width": "2px", "border-right-width": "8em", "border-bottom-width": "4pt", "border-left-width": "5px",
		}},
		{"margin", "1px 2px 3px", map[string]string{
			"margin-top": "1px", "margin-right": "2px", "margin-bottom": "3px", "margin-left": "2px",
		}},
		{"margin", "inherit", map[string]string{
			"margin-top": "inherit", "margin-right": "inherit", "margin-bottom": "inherit", "margin-left": "inherit",
		}},
		{"margin", "1px inherit", map[string]string{
			"margin-top": "1px", "margin-right": "inherit", "margin-bottom": "1px", "margin-left": "inherit",
		}},
		{"padding-inline", "1em", map[string]string{"padding-inline-start": "1em", "padding-inline-end": "1em"}},
		{"border", "1px dashed blue", map[string]string{
			"border-top-width": "1px", "border-left-style": "dashed", "border-bottom-color": "blue", "border-image-source": "none", "border-image-slice": "100%",
		}},
		{"border-top", "0 blue", map[string]string{"border-top-width": "0", "border-top-style": "none", "border-top-color": "blue"}},
		{"outline", "auto", map[string]string{"outline-style": "auto", "outline-width": "medium"}},
		{"outline", "thin dotted invert", map[string]string{"outline-width": "thin", "outline-style": "dotted", "outline-color": "invert"}},
		{"border-radius", "1px 2px / 3px", map[string]string{
			"border-top-left-radius": "1px 3px", "border-top-right-radius": "2px 3px", "border-bottom-right-radius": "1px 3px", "border-bottom-left-radius": "2px 3px",
		}},
		{"border-image", "url(a.png) 30 / 10px round", map[string]string{
			"border-image-source": "url(a.png)", "border-image-slice": "30", "border-image-width": "10px", "border-image-outset": "0", "border-image-repeat": "round",
		}},
		{"list-style", "none", map[string]string{"list-style-type": "none", "list-style-image": "none", "list-style-position": "outside"}},
		{"list-style", "square inside", map[string]string{"list-style-type": "square", "list-style-position": "inside", "list-style-image": "none"}},
		{"text-decoration", "underline dotted red", map[string]string{"text-decoration-line": "underline", "text-decoration-style": "dotted", "text-decoration-color": "red"}},
		{"flex", "none", map[string]string{"flex-grow": "0", "flex-shrink": "0", "flex-basis": "auto"}},
		{"flex", "2", map[string]string{"flex-grow": "2", "flex-shrink": "1", "flex-basis": "0%"}},
		{"flex", "1 30px", map[string]string{"flex-grow": "1", "flex-shrink": "1", "flex-basis": "30px"}},
		{"flex", "auto", map[string]string{"flex-grow": "1", "flex-shrink": "1", "flex-basis": "auto"}},
		{"flex-flow", "column wrap", map[string]string{"flex-direction": "column", "flex-wrap": "wrap"}},
		{"columns", "12em", map[string]string{"column-width": "12em", "column-count": "auto"}},
		{"columns", "auto 3", map[string]string{"column-width": "auto", "column-count": "3"}},
		{"gap", "1em", map[string]string{"row-gap": "1em", "column-gap": "1em"}},
		{"overflow", "hidden auto", map[string]string{"overflow-x": "hidden", "overflow-y": "auto"}},
		{"place-content", "baseline", map[string]string{"align-content": "baseline", "justify-content": "start"}},
		{"place-items", "safe center end", map[string]string{"align-items": "safe center", "justify-items": "end"}},
		{"animation", "3500ms 5s reverse '1st anim', 0 3s steps(2,start) alternate \"2nd anim\"", map[string]string{
			"animation-duration":        "3500ms, 3s",
			"animation-timing-function": "ease, steps(2, start)",
			"animation-delay":           "5s, 0s",
			"animation-iteration-count": "1, 0",
			"animation-direction":       "reverse, alternate",
			"animation-name":            "'1st anim', \"2nd anim\"",
		}},
		{"animation", "none", map[string]string{"animation-fill-mode": "none", "animation-name": "none"}},
		{"transition", "opacity 1s", map[string]string{
			"transition-property": "opacity", "transition-duration": "1s", "transition-timing-function": "ease", "transition-delay": "0s",
		}},
		{"background", "url(a.png) no-repeat center / cover, red", map[string]string{
			"background-image":      "url(a.png), none",
			"background-position":   "center, 0% 0%",
			"background-size":       "cover, auto",
			"background-repeat":     "no-repeat, repeat",
			"background-attachment": "scroll, scroll",
			"background-origin":     "padding-box, padding-box",
			"background-clip":       "border-box, border-box",
			"background-color":      "red",
		}},
		{"background", "content-box text", map[string]string{"background-origin": "content-box", "background-clip": "text"}},
		{"background", "padding-box", map[string]string{"background-origin": "padding-box", "background-clip": "padding-box"}},
		{"mask", "url(m.svg) luminance no-clip", map[string]string{"mask-image": "url(m.svg)", "mask-mode": "luminance", "mask-clip": "no-clip", "mask-origin": "border-box"}},
		{"font", "italic bold 12px/1.5 \"Helvetica Neue\", sans-serif", map[string]string{
			"font-style":        "italic",
			"font-variant-caps": "normal",
			"font-weight":       "bold",
			"font-size":         "12px",
			"line-height":       "1.5",
			"font-family":       "\"Helvetica Neue\", sans-serif",
			"font-kerning":      "auto",
		}},
		{"font", "oblique 10deg normal 1em Times New Roman", map[string]string{"font-style": "oblique 10deg", "font-weight": "normal", "font-family": "Times New Roman"}},
		{"font", "caption", map[string]string{"font-family": "caption", "font-size": "13px", "font-weight": "normal", "font-style": "normal", "line-height": "normal"}},
		{"font", "Small-Caption", map[string]string{"font-family": "small-caption", "font-size": "11px", "font-variant-caps": "normal"}},
		{"font-variant", "small-caps slashed-zero", map[string]string{"font-variant-caps": "small-caps", "font-variant-numeric": "slashed-zero", "font-variant-ligatures": "normal"}},
		{"font-variant", "none", map[string]string{"font-variant-ligatures": "none", "font-variant-caps": "normal"}},
		{"grid-template", "\"a a a\" \"b b b\" max-content", map[string]string{
			"grid-template-areas": "\"a a a\" \"b b b\"", "grid-template-rows": "auto max-content", "grid-template-columns": "none",
		}},
		{"grid-template", "[top] \"a\" 10px [mid] [mid2] \"b\" [bottom] / 1fr", map[string]string{
			"grid-template-areas": "\"a\" \"b\"", "grid-template-rows": "[top] 10px [mid mid2] auto [bottom]", "grid-template-columns": "1fr",
		}},
		{"grid-template", "[a] 100px [b] / 1fr 2fr", map[string]string{
			"grid-template-rows": "[a] 100px [b]", "grid-template-columns": "1fr 2fr", "grid-template-areas": "none",
		}},
		{"grid-template", "none", map[string]string{"grid-template-rows": "none", "grid-template-columns": "none", "grid-template-areas": "none"}},
		{"grid", "auto-flow dense 40px / 1fr 1fr", map[string]string{
			"grid-auto-flow": "row dense", "grid-auto-rows": "40px", "grid-template-columns": "1fr 1fr", "grid-template-rows": "none", "grid-auto-columns": "auto",
		}},
		{"grid", "100px / auto-flow", map[string]string{"grid-auto-flow": "column", "grid-template-rows": "100px", "grid-auto-columns": "auto"}},
		{"grid", "\"a\" 10px / 1fr", map[string]string{"grid-template-areas": "\"a\"", "grid-auto-flow": "row", "grid-auto-rows": "auto"}},
		{"grid-area", "a", map[string]string{"grid-row-start": "a", "grid-column-start": "a", "grid-row-end": "a", "grid-column-end": "a"}},
		{"grid-area", "1 / 2", map[string]string{"grid-row-start": "1", "grid-column-start": "2", "grid-row-end": "auto", "grid-column-end": "auto"}},
		{"grid-row", "span 2 / 5", map[string]string{"grid-row-start": "span 2", "grid-row-end": "5"}},
		{"grid-column", "main", map[string]string{"grid-column-start": "main", "grid-column-end": "main"}},
	}
	for _, tt := range tests {
		t.Run(tt.name+": "+tt.input, func(t *testing.T) {
			res, err := expandString(t, tt.name, tt.input)
			test.Error(t, err)
			test.That(t, !res.Pending, "must not be pending")
			for longhand, expected := range tt.expected {
				i := res.Shorthand.Index(longhand)
				test.That(t, i != -1, "unknown longhand "+longhand)
				test.String(t, res.Values[i].String(), expected, longhand)
			}
		})
	}
}

func TestExpandErrors(t *testing.T) {
	var tests = []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"background", "gray, yellow", ConflictError},
		{"background", ", red", SyntaxError},
		{"background", "center /", IncompleteError},
		{"background", "/ cover", SyntaxError},
		{"font", "12px", IncompleteError},
		{"font", "bold", IncompleteError},
		{"font", "12px/ serif", IncompleteError},
		{"font", "bold bold 12px serif", SyntaxError},
		{"font-variant", "small-caps all-small-caps", SyntaxError},
		{"border", "1px 2px", SyntaxError},
		{"border", "inherit 1px", SyntaxError},
		{"border", "thin dotted invert", SyntaxError},
		{"margin", "1px 2px 3px 4px 5px", SyntaxError},
		{"margin", "inherit inherit 1px", SyntaxError},
		{"margin", "1px, 2px", SyntaxError},
		{"border-radius", "1px /", IncompleteError},
		{"border-radius", "1px / 2px / 3px", SyntaxError},
		{"flex", "1 2 3 4", SyntaxError},
		{"animation", "1s 2s 3s", SyntaxError},
		{"transition", "opacity, ", SyntaxError},
		{"grid-template", "\"a\" / 1fr / 2fr", SyntaxError},
		{"grid-template", "\"a b\" \"a a\"", SyntaxError},
		{"grid-template", "\"a\" \"b c\"", SyntaxError},
		{"grid-template", "10px \"a\"", SyntaxError},
		{"grid-template", "10px", SyntaxError},
		{"grid", "auto-flow / auto-flow", SyntaxError},
		{"grid", "dense 10px / auto-flow", SyntaxError},
		{"grid-area", "1 / 2 / 3 / 4 / 5", SyntaxError},
		{"grid-row", "span", SyntaxError},
		{"grid-row", "0", SyntaxError},
	}
	for _, tt := range tests {
		t.Run(tt.name+": "+tt.input, func(t *testing.T) {
			_, err := expandString(t, tt.name, tt.input)
			e, ok := err.(*Error)
			test.That(t, ok, "must return *Error")
			test.T(t, e.Kind, tt.kind, e.Message)
			test.String(t, e.Property, tt.name)
		})
	}
}

func TestExpandUnknown(t *testing.T) {
	_, err := Expand("color", []value.Value{value.NewKeyword("red")})
	test.T(t, err, ErrUnknownShorthand)
}

func TestPending(t *testing.T) {
	var tests = []struct {
		name  string
		input string
	}{
		{"border-top", "0 var(--whatever)"},
		{"margin", "env(safe-area-inset-top) 1px"},
		{"background", "-webkit-unknown(1) red"},
		{"flex", "calc(var(--grow) * 2)"},
		{"font", "--my-font(1) serif"},
	}
	for _, tt := range tests {
		t.Run(tt.name+": "+tt.input, func(t *testing.T) {
			res, err := expandString(t, tt.name, tt.input)
			test.Error(t, err)
			test.That(t, res.Pending, "must be pending")
			test.T(t, len(res.Values), 0)
			test.String(t, res.Text, tt.input)
		})
	}
}

func TestCompose(t *testing.T) {
	var tests = []struct {
		name      string
		input     string
		verbose   string
		optimized string
	}{
		{"margin", "1px 1px 1px 1px", "1px", "1px"},
		{"margin", "1px 2px 1px 2px", "1px 2px", "1px 2px"},
		{"margin", "1px 2px 3px 2px", "1px 2px 3px", "1px 2px 3px"},
		{"margin", "inherit", "inherit", "inherit"},
		{"margin", "0.50em inherit", "0.50em inherit", ".5em inherit"},
		{"margin-block", "1px 1px", "1px", "1px"},
		{"border", "1px dashed blue", "1px dashed blue", "1px dashed blue"},
		{"border", "solid", "solid", "solid"},
		{"border", "none", "none", "none"},
		{"border-top", "blue 0", "0 blue", "0 blue"},
		{"border-radius", "1px 2px / 3px", "1px 2px / 3px", "1px 2px/3px"},
		{"border-radius", "5%", "5%", "5%"},
		{"border-image", "url(a.png) 30 / 10px round", "url(a.png) 30 / 10px round", "url(a.png) 30/10px round"},
		{"list-style", "square inside", "inside square", "inside square"},
		{"list-style", "none", "none", "none"},
		{"text-decoration", "red underline", "underline red", "underline red"},
		{"flex", "none", "none", "none"},
		{"flex", "0 0 auto", "none", "none"},
		{"flex", "1", "1", "1"},
		{"flex", "2 30px", "2 30px", "2 30px"},
		{"flex", "2 3 30px", "2 3 30px", "2 3 30px"},
		{"flex-flow", "row nowrap", "row", "row"},
		{"columns", "auto auto", "auto", "auto"},
		{"columns", "3 10em", "10em 3", "10em 3"},
		{"place-content", "baseline", "baseline", "baseline"},
		{"place-items", "center center", "center", "center"},
		{"overflow", "hidden auto", "hidden auto", "hidden auto"},
		{"animation", "3500ms 5s reverse '1st anim', 0 3s steps(2,start) alternate \"2nd anim\"",
			"3500ms 5s reverse '1st anim', 3s steps(2, start) 0 alternate \"2nd anim\"",
			"3500ms 5s reverse '1st anim',3s steps(2,start) 0 alternate \"2nd anim\""},
		{"animation", "none", "none", "none"},
		{"transition", "opacity 1s", "opacity 1s", "opacity 1s"},
		{"transition", "all 0s ease 1s", "0s 1s", "0s 1s"},
		{"background", "url(a.png) no-repeat center / cover, red",
			"url(a.png) center / cover no-repeat, red",
			"url(a.png) center/cover no-repeat,red"},
		{"background", "none", "none", "none"},
		{"background", "content-box text", "content-box text", "content-box text"},
		{"background", "text", "text", "text"},
		{"mask", "url(m.svg) luminance", "url(m.svg) luminance", "url(m.svg) luminance"},
		{"font", "italic bold 12px/1.5 \"Helvetica Neue\", sans-serif",
			"italic bold 12px / 1.5 \"Helvetica Neue\", sans-serif",
			"italic bold 12px/1.5 \"Helvetica Neue\",sans-serif"},
		{"font", "normal normal 0.8em serif", "0.8em serif", ".8em serif"},
		{"font", "caption", "caption", "caption"},
		{"font", "13px menu", "menu", "menu"},
		{"outline", "invert thin", "thin invert", "thin invert"},
		{"font-variant", "slashed-zero small-caps", "small-caps slashed-zero", "small-caps slashed-zero"},
		{"font-variant", "normal", "normal", "normal"},
		{"font-variant", "none", "none", "none"},
		{"grid-template", "\"a a a\" \"b b b\" max-content",
			"\"a a a\" auto \"b b b\" max-content",
			"\"a a a\" \"b b b\" max-content"},
		{"grid-template", "[a] 100px [b] / 1fr 2fr", "[a] 100px [b] / 1fr 2fr", "[a] 100px [b] / 1fr 2fr"},
		{"grid-template", "none", "none", "none"},
		{"grid", "auto-flow dense 40px / 1fr 1fr", "auto-flow dense 40px / 1fr 1fr", "auto-flow dense 40px / 1fr 1fr"},
		{"grid", "auto-flow / 1fr", "none / 1fr", "none / 1fr"},
		{"grid", "auto-flow 10px / 1fr", "auto-flow 10px / 1fr", "auto-flow 10px / 1fr"},
		{"grid", "100px / auto-flow", "100px / auto-flow auto", "100px / auto-flow"},
		{"grid-area", "a", "a", "a"},
		{"grid-area", "1 / 2", "1 / 2", "1 / 2"},
		{"grid-area", "a / b / a / b", "a / b", "a / b"},
		{"grid-row", "span 2 / 5", "span 2 / 5", "span 2 / 5"},
		{"grid-column", "3 / auto", "3", "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name+": "+tt.input, func(t *testing.T) {
			res, err := expandString(t, tt.name, tt.input)
			test.Error(t, err)

			comps, ok := Compose(res.Shorthand, res.Values, false)
			test.That(t, ok, "must be composable")
			test.String(t, value.ComponentsString(comps, false), tt.verbose)

			comps, ok = Compose(res.Shorthand, res.Values, true)
			test.That(t, ok, "must be composable when optimized")
			w := value.Writer{Minify: true, SpacedSlash: SpacedSlash(tt.name)}
			test.String(t, string(w.AppendComponents(nil, comps)), tt.optimized)
		})
	}
}

func TestComposeNotRepresentable(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		longhand string
		val      string
	}{
		{"border", "1px solid red", "border-top-width", "2px"},
		{"border", "1px solid red", "border-image-source", "url(a.png)"},
		{"border-style", "solid", "border-top-style", "inherit"},
		{"font", "12px serif", "font-kerning", "none"},
		{"background", "red", "background-image", "none, none"},
		{"font-variant", "none", "font-variant-caps", "small-caps"},
		{"grid", "auto-flow 40px / 1fr", "grid-template-rows", "10px"},
		{"grid-template", "\"a\" \"b\"", "grid-template-rows", "10px"},
	}
	for _, tt := range tests {
		t.Run(tt.name+": "+tt.longhand, func(t *testing.T) {
			res, err := expandString(t, tt.name, tt.input)
			test.Error(t, err)
			res.Values[res.Shorthand.Index(tt.longhand)] = value.MustParse(tt.val)

			_, ok := Compose(res.Shorthand, res.Values, false)
			test.That(t, !ok, "must not be composable")
		})
	}
}

func TestComposeSystemFont(t *testing.T) {
	var tests = []struct {
		input    string
		longhand string
		val      string
		expected string
	}{
		{"menu", "font-size", "20px", "20px menu"},
		{"caption", "font-style", "italic", "italic 13px caption"},
		{"status-bar", "font-weight", "bold", "bold 12px status-bar"},
	}
	for _, tt := range tests {
		t.Run(tt.input+": "+tt.longhand, func(t *testing.T) {
			res, err := expandString(t, "font", tt.input)
			test.Error(t, err)
			res.Values[res.Shorthand.Index(tt.longhand)] = value.MustParse(tt.val)

			comps, ok := Compose(res.Shorthand, res.Values, false)
			test.That(t, ok)
			test.String(t, value.ComponentsString(comps, false), tt.expected)
		})
	}
}

func TestComposeWide(t *testing.T) {
	s := property.Lookup("border")
	vals := make([]value.Value, len(s.Longhands))
	for i := range vals {
		vals[i] = value.NewKeyword("unset")
	}
	comps, ok := Compose(s, vals, false)
	test.That(t, ok)
	test.String(t, value.ComponentsString(comps, false), "unset")

	vals[0] = value.NewKeyword("inherit")
	_, ok = Compose(s, vals, false)
	test.That(t, !ok, "mixed CSS-wide keywords")

	_, ok = Compose(s, vals[:3], false)
	test.That(t, !ok, "wrong number of values")
}

func TestErrorString(t *testing.T) {
	_, err := expandString(t, "font", "12px")
	test.String(t, err.Error(), "incomplete error in font: missing font family")
	test.T(t, UnresolvedReferenceWarning.IsWarning(), true)
	test.T(t, SyntaxError.IsWarning(), false)
}
