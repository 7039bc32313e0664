package cssom

import (
	"bytes"
	"log"
	"testing"

	"github.com/tdewolff/test"
)

func TestSerialize(t *testing.T) {
	var tests = []struct {
		css      string
		verbose  string
		minified string
	}{
		{"border: 1px dashed blue; border-top-color: yellow;", "border: 1px dashed blue; border-top-color: yellow; ", "border:1px dashed blue;border-top-color:yellow"},
		{"margin-top: 5px; margin: 1px;", "margin: 1px; ", "margin:1px"},
		{"margin: 1px; margin-top: 2px !important", "margin: 1px; margin-top: 2px !important; ", "margin:1px;margin-top:2px!important"},
		{"margin: 1px !important; margin: 2px;", "margin: 1px !important; ", "margin:1px!important"},
		{"margin: 0.50em 1em 0.50em 1em", "margin: 0.50em 1em; ", "margin:.5em 1em"},
		{"color: red; padding: 0 0 0 0", "color: red; padding: 0; ", "color:red;padding:0"},
		{"font: italic bold 12px/1.5 serif", "font: italic bold 12px / 1.5 serif; ", "font:italic bold 12px/1.5 serif"},
		{"grid-area: 1 / 2", "grid-area: 1 / 2; ", "grid-area:1 / 2"},
		{"--main-color:  #06c ;", "--main-color: #06c; ", "--main-color:#06c"},
		{"border-top: 0 var(--whatever)", "border-top: 0 var(--whatever); ", "border-top:0 var(--whatever)"},
		{"transition: opacity 1s, color 2s", "transition: opacity 1s, color 2s; ", "transition:opacity 1s,color 2s"},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			d := ParseDeclaration(tt.css, nil)
			test.That(t, !d.HasErrors(), "must not have errors")
			test.String(t, d.Serialize(), tt.verbose)
			test.String(t, d.Minify(), tt.minified)
		})
	}
}

func TestOptimize(t *testing.T) {
	var tests = []struct {
		css       string
		minified  string
		optimized string
	}{
		{`grid-template: "a a a" "b b b" max-content;`, `grid-template:"a a a" auto "b b b" max-content`, `grid-template:"a a a" "b b b" max-content`},
		{`grid: 100px / auto-flow`, `grid:100px / auto-flow auto`, `grid:100px / auto-flow`},
		{`margin: 1px`, `margin:1px`, `margin:1px`},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			d := ParseDeclaration(tt.css, nil)
			test.String(t, d.Minify(), tt.minified)
			test.String(t, d.Optimize(), tt.optimized)
		})
	}
}

func TestExpanded(t *testing.T) {
	d := ParseDeclaration("margin: 1px 2px; border-top: 0 var(--x)", nil)
	test.String(t, d.Expanded(), "margin-top: 1px; margin-right: 2px; margin-bottom: 1px; margin-left: 2px; border-top: 0 var(--x); ")
	test.String(t, d.Format(Verbose), d.Serialize())
}

func TestLonghandOverride(t *testing.T) {
	d := ParseDeclaration("border: 1px dashed blue; border-top-color: yellow;", nil)
	test.String(t, d.GetPropertyValue("border-top-color"), "yellow")
	test.String(t, d.GetPropertyValue("border-top"), "1px dashed yellow")
	test.String(t, d.GetPropertyValue("border"), "")
	test.T(t, d.Length(), 17)

	test.String(t, d.RemoveProperty("border-top-color"), "yellow")
	test.String(t, d.GetPropertyValue("border-top-color"), "blue")
	test.String(t, d.GetPropertyValue("border"), "1px dashed blue")
	test.String(t, d.RemoveProperty("border-top-color"), "")
}

func TestRemoveProperty(t *testing.T) {
	d := ParseDeclaration("border-width:1px;border-bottom-width:3px;border-bottom-style:solid;border-top:0 blue;border-left:0 navy;", nil)
	test.String(t, d.RemoveProperty("border-bottom-width"), "3px")
	test.String(t, d.GetPropertyValue("border-bottom-width"), "1px")

	// set by a shorthand
	test.String(t, d.RemoveProperty("border-top-width"), "")
	test.String(t, d.GetPropertyValue("border-top-width"), "0")

	test.String(t, d.RemoveProperty("border-top"), "0 blue")
	test.String(t, d.GetPropertyValue("border-top-width"), "")
	test.String(t, d.GetPropertyValue("border-top-color"), "")
	test.String(t, d.GetPropertyValue("border-left-color"), "navy")

	test.String(t, d.RemoveProperty("color"), "")
}

func TestKeywordBroadcast(t *testing.T) {
	d := ParseDeclaration("margin: inherit !important", nil)
	for _, name := range []string{"margin-top", "margin-right", "margin-bottom", "margin-left"} {
		test.String(t, d.GetPropertyValue(name), "inherit", name)
		test.String(t, d.GetPropertyPriority(name), "important", name)
	}
	test.String(t, d.GetPropertyValue("margin"), "inherit")
	test.String(t, d.GetPropertyPriority("margin"), "important")
	test.String(t, d.Serialize(), "margin: inherit !important; ")
	test.String(t, d.Minify(), "margin:inherit!important")
}

func TestVarGuard(t *testing.T) {
	errs := &ErrorList{}
	d := ParseDeclaration("border-top: 0 var(--whatever)", errs)
	test.That(t, !d.HasErrors(), "must not have errors")
	test.That(t, d.HasWarnings(), "must have warnings")
	test.T(t, errs.Warnings[0].Kind, UnresolvedReferenceWarning)
	test.T(t, d.Length(), 3)
	for _, name := range []string{"border-top-width", "border-top-style", "border-top-color"} {
		test.String(t, d.GetPropertyValue(name), "", name)
	}
	test.String(t, d.GetPropertyValue("border-top"), "0 var(--whatever)")
	test.String(t, d.GetPropertyValue("border"), "")

	// an explicit longhand resolves one slot only
	d.SetPropertyText("border-top-color: red")
	test.String(t, d.GetPropertyValue("border-top-color"), "red")
	test.String(t, d.GetPropertyValue("border-top"), "")
	test.String(t, d.Serialize(), "border-top: 0 var(--whatever); border-top-color: red; ")
}

func TestFailedWrite(t *testing.T) {
	var tests = []struct {
		css  string
		kind ErrorKind
	}{
		{"background: gray, yellow", ConflictError},
		{"margin: 1px 2px 3px 4px 5px", SyntaxError},
		{"font: 12px", IncompleteError},
		{"border: inherit 1px", SyntaxError},
		{"grid-template: \"a\" / 1fr / 2fr", SyntaxError},
		{"margin: ", SyntaxError},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			errs := &ErrorList{}
			d := ParseDeclaration("color: red; margin: 1px", errs)
			test.T(t, d.Length(), 5)

			test.That(t, !d.SetPropertyText(tt.css), "must fail")
			test.That(t, d.HasErrors(), "must have errors")
			test.T(t, errs.Errors[0].Kind, tt.kind)
			test.T(t, d.Length(), 5)
			test.String(t, d.GetPropertyValue("margin"), "1px")
			test.String(t, d.Serialize(), "color: red; margin: 1px; ")
		})
	}
}

func TestPartialFailure(t *testing.T) {
	errs := &ErrorList{}
	d := ParseDeclaration("margin: 1px; background: gray, yellow; padding: 2px", errs)
	test.T(t, len(errs.Errors), 1)
	test.String(t, errs.Errors[0].Property, "background")
	test.String(t, d.Serialize(), "margin: 1px; padding: 2px; ")

	errs.Reset()
	test.That(t, !errs.HasErrors())
	test.That(t, !errs.HasWarnings())
}

func TestSetProperty(t *testing.T) {
	d := NewDeclaration(nil)
	test.That(t, d.SetProperty("Margin", "1px 2px", "important"))
	test.String(t, d.GetPropertyPriority("margin"), "important")
	test.String(t, d.GetPropertyValue("margin-left"), "2px")

	test.That(t, d.SetProperty("padding", "1px !important", ""))
	test.String(t, d.GetPropertyPriority("padding-top"), "important")

	test.That(t, d.SetProperty("--gap", " 4px ", ""))
	test.String(t, d.GetPropertyValue("--gap"), "4px")

	test.That(t, !d.SetProperty("color", "red", "bogus"), "invalid priority")
	test.That(t, !d.SetProperty("color", "", ""), "empty value")
	test.That(t, d.HasErrors())
	test.String(t, d.GetPropertyValue("color"), "")
}

func TestSetCSSText(t *testing.T) {
	d := ParseDeclaration("margin: 1px; color: red", nil)
	test.T(t, d.Length(), 5)
	test.String(t, d.Item(0), "margin-top")
	test.String(t, d.Item(4), "color")
	test.String(t, d.Item(5), "")
	test.String(t, d.Item(-1), "")

	d.SetCSSText("padding: 2px")
	test.T(t, d.Length(), 4)
	test.T(t, d.Names(), []string{"padding-top", "padding-right", "padding-bottom", "padding-left"})
	test.String(t, d.GetPropertyValue("margin"), "")
	test.String(t, d.Serialize(), "padding: 2px; ")
}

func TestIdempotence(t *testing.T) {
	var tests = []string{
		"border: 1px dashed blue; border-top-color: yellow;",
		"margin: 1px 2px !important; margin-left: 3px;",
		"margin: 1px; margin-top: 2px !important",
		"background: url(a.png) no-repeat center / cover, red; font: italic bold 12px/1.5 serif;",
		"grid-template: \"a a a\" \"b b b\" max-content; grid-area: a;",
		"grid: auto-flow dense 40px / 1fr 1fr",
		"animation: 3500ms 5s reverse '1st anim', 0 3s steps(2,start) alternate \"2nd anim\";",
		"border-top: 0 var(--whatever); --x: 1px 2px;",
		"flex: 1; transition: opacity 1s; list-style: square inside",
		"border-width:1px;border-bottom-width:3px;border-bottom-style:solid;border-top:0 blue;border-left:0 navy;",
		"margin: 1px; font: 12px \"serif",
		"margin: 1px; --x: foo(\"a",
	}
	for _, css := range tests {
		t.Run(css, func(t *testing.T) {
			d := ParseDeclaration(css, nil)
			test.That(t, !d.HasErrors(), "must not have errors")
			for _, mode := range []Mode{Verbose, Minified, Optimized, Expanded} {
				d2 := ParseDeclaration(d.Format(mode), nil)
				test.That(t, !d2.HasErrors(), mode.String()+" output must parse: "+d.Format(mode))
				test.T(t, d2.Length(), d.Length(), mode.String())
				for _, name := range d.Names() {
					test.String(t, d2.GetPropertyValue(name), d.GetPropertyValue(name), mode.String()+" "+name)
					test.String(t, d2.GetPropertyPriority(name), d.GetPropertyPriority(name), mode.String()+" "+name)
				}
			}
		})
	}
}

func TestUnterminatedString(t *testing.T) {
	d := ParseDeclaration(`font: 12px "serif`, nil)
	test.That(t, !d.HasErrors(), "must not have errors")
	test.That(t, d.SetProperty("color", "red", ""))
	test.String(t, d.GetPropertyValue("font-family"), `"serif"`)

	d2 := ParseDeclaration(d.Serialize(), nil)
	test.T(t, d2.Length(), d.Length())
	test.String(t, d2.GetPropertyValue("color"), "red")
	test.String(t, d2.GetPropertyValue("font-family"), `"serif"`)

	d = ParseDeclaration(`--x: "a`, nil)
	test.That(t, d.SetProperty("color", "red", ""))
	test.String(t, d.Serialize(), `--x: "a"; color: red; `)
}

func TestLogHandler(t *testing.T) {
	errBuf, warnBuf := &bytes.Buffer{}, &bytes.Buffer{}
	h := &LogHandler{
		Error:   log.New(errBuf, "", 0),
		Warning: log.New(warnBuf, "", 0),
		Prefix:  "style.css: ",
	}
	d := ParseDeclaration("font: 12px; margin: var(--m)", h)
	test.That(t, d.HasErrors())
	test.That(t, d.HasWarnings())
	test.T(t, d.Errors(), ErrorHandler(h))
	test.String(t, errBuf.String(), "style.css: incomplete error in font: missing font family\n")
	test.String(t, warnBuf.String(), "style.css: unresolved reference in margin: value depends on var(--m)\n")

	h2 := &LogHandler{}
	ParseDeclaration("font: 12px", h2)
	test.That(t, h2.HasErrors())
	test.That(t, !h2.HasWarnings())
}

func TestMode(t *testing.T) {
	for _, mode := range []Mode{Verbose, Minified, Optimized, Expanded} {
		m, ok := ParseMode(mode.String())
		test.That(t, ok)
		test.T(t, m, mode)
	}
	_, ok := ParseMode("pretty")
	test.That(t, !ok)
}
