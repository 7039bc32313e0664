package stylesheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/cssom"
	"github.com/tdewolff/test"
)

func TestRewriteMinified(t *testing.T) {
	var tests = []struct {
		css      string
		expected string
	}{
		{"a { border: 1px dashed blue; border-top-color: yellow; }", "a{border:1px dashed blue;border-top-color:yellow}"},
		{"a { margin: 1px 1px 1px 1px; } b { padding: 0.50em 0 }", "a{margin:1px}b{padding:.5em 0}"},
		{"a, b { color: red; }", "a,b{color:red}"},
		{"a { }", "a{}"},
		{"@media print { .a { flex: 0 0 auto; } }", "@media print{.a{flex:none}}"},
		{"@keyframes x { from { margin: 0 0 0 0 } to { margin: 1px } }", "@keyframes x{from{margin:0}to{margin:1px}}"},
		{"@font-face { font-family: x; font-weight: bold }", "@font-face{font-family:x;font-weight:bold}"},
		{"a { --main: #06c; color: var(--main) }", "a{--main:#06c;color:var(--main)}"},
		{"a { border-top: 0 var(--x) }", "a{border-top:0 var(--x)}"},
		{"a { margin: 1px !important; margin: 2px }", "a{margin:1px!important}"},
		{"a { font: italic bold 12px/1.5 serif }", "a{font:italic bold 12px/1.5 serif}"},
		{".g { grid-area: 1 / 2 }", ".g{grid-area:1 / 2}"},
		{"/*! license */ a { color: red } /* dropped */", "/*! license */a{color:red}"},

		// early endings
		{"a { color: red", "a{color:red"},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			out, err := String(tt.css, Options{Mode: cssom.Minified}, nil)
			test.Error(t, err)
			test.String(t, out, tt.expected)
		})
	}
}

func TestRewriteVerbose(t *testing.T) {
	var tests = []struct {
		css      string
		expected string
	}{
		{"a{margin:1px 2px 1px 2px}", "a { margin: 1px 2px; }\n"},
		{"a,b{color:red}", "a, b { color: red; }\n"},
		{"a{}", "a { }\n"},
		{"@media print{.a{flex:0 0 auto}}", "@media print {\n\t.a { flex: none; }\n}\n"},
		{"@font-face{font-family:x;font-weight:bold}", "@font-face {\n\tfont-family: x; font-weight: bold;\n}\n"},
		{"/* note */a{color:red}", "a { color: red; }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.css, func(t *testing.T) {
			out, err := String(tt.css, Options{Mode: cssom.Verbose}, nil)
			test.Error(t, err)
			test.String(t, out, tt.expected)
		})
	}
}

func TestRewriteModes(t *testing.T) {
	css := `.g { grid-template: "a a" "b b" 1fr; margin: 1px 2px }`
	var tests = []struct {
		mode     cssom.Mode
		expected string
	}{
		{cssom.Verbose, ".g { grid-template: \"a a\" auto \"b b\" 1fr; margin: 1px 2px; }\n"},
		{cssom.Minified, `.g{grid-template:"a a" auto "b b" 1fr;margin:1px 2px}`},
		{cssom.Optimized, `.g{grid-template:"a a" "b b" 1fr;margin:1px 2px}`},
		{cssom.Expanded, ".g { grid-template-rows: auto 1fr; grid-template-columns: none; grid-template-areas: \"a a\" \"b b\"; margin-top: 1px; margin-right: 2px; margin-bottom: 1px; margin-left: 2px; }\n"},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			out, err := String(css, Options{Mode: tt.mode}, nil)
			test.Error(t, err)
			test.String(t, out, tt.expected)
		})
	}
}

func TestRewriteComments(t *testing.T) {
	out, err := String("/* a */b{color:red}", Options{Mode: cssom.Minified, KeepComments: true}, nil)
	test.Error(t, err)
	test.String(t, out, "/* a */b{color:red}")
}

func TestRewriteInline(t *testing.T) {
	out, err := String("margin: 1px 1px; color: red !important", Options{Mode: cssom.Minified, Inline: true}, nil)
	test.Error(t, err)
	test.String(t, out, "margin:1px;color:red!important")

	out, err = String("margin: 1px 1px", Options{Mode: cssom.Verbose, Inline: true}, nil)
	test.Error(t, err)
	test.String(t, out, "margin: 1px; ")
}

func TestRewriteErrors(t *testing.T) {
	errs := &cssom.ErrorList{}
	out, err := String("a { background: gray, yellow; color: red } b { margin: ; font: 12px }", Options{Mode: cssom.Minified}, errs)
	test.Error(t, err)
	test.String(t, out, "a{color:red}b{}")
	test.T(t, len(errs.Errors), 3)
	test.T(t, errs.Errors[0].Kind, cssom.ConflictError)
	test.T(t, errs.Errors[2].Kind, cssom.IncompleteError)
}

func TestRewriteWriter(t *testing.T) {
	w := &bytes.Buffer{}
	err := Rewrite(w, strings.NewReader("a{padding:0 0}"), Options{Mode: cssom.Optimized}, nil)
	test.Error(t, err)
	test.String(t, w.String(), "a{padding:0}")
}
