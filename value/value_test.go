package value

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParse(t *testing.T) {
	var tests = []struct {
		input    string
		verbose  string
		minified string
	}{
		{"1px", "1px", "1px"},
		{"0px", "0px", "0px"},
		{"0.5em", "0.5em", ".5em"},
		{"-0.50%", "-0.50%", "-.5%"},
		{"1px   solid\tred", "1px solid red", "1px solid red"},
		{"a,b , c", "a, b, c", "a,b,c"},
		{"10px/1.5 serif", "10px / 1.5 serif", "10px/1.5 serif"},
		{"url(a.png) no-repeat", "url(a.png) no-repeat", "url(a.png) no-repeat"},
		{"rgb(0,  0 ,0)", "rgb(0, 0, 0)", "rgb(0,0,0)"},
		{"rgb(0 0 0 / 0.5)", "rgb(0 0 0 / 0.5)", "rgb(0 0 0/.5)"},
		{"calc(100% - 10px)", "calc(100% - 10px)", "calc(100% - 10px)"},
		{"[a  b] 1fr [c]", "[a b] 1fr [c]", "[a b] 1fr [c]"},
		{"\"a a\" 'b'", "\"a a\" 'b'", "\"a a\" 'b'"},
		{"#FFF", "#FFF", "#FFF"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			comps, err := Parse(tt.input)
			test.Error(t, err)
			test.String(t, ComponentsString(comps, false), tt.verbose)
			test.String(t, ComponentsString(comps, true), tt.minified)

			v := FromComponents(comps)
			test.String(t, v.String(), tt.verbose)
			test.String(t, v.Minify(), tt.minified)
		})
	}
}

func TestParseErrors(t *testing.T) {
	var tests = []string{
		"",
		"   ",
		"a; b",
		"{a}",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := Parse(tt)
			test.That(t, err != nil, "must return error")
		})
	}
}

func TestKinds(t *testing.T) {
	comps, err := Parse("auto 2px 50% 3 #fff 'x' url(y) f(1) [n] , /")
	test.Error(t, err)
	kinds := []Kind{Keyword, Dimension, Percentage, Number, Color, String, URL, Function, LineNames, Operator, Operator}
	test.T(t, len(comps), len(kinds))
	for i, kind := range kinds {
		test.T(t, comps[i].Kind, kind, comps[i].Text)
	}
	test.T(t, comps[1].Num, 2.0)
	test.String(t, comps[1].Unit, "px")
	test.T(t, comps[2].Num, 50.0)
	test.String(t, comps[7].Name(), "f")
}

func TestTrimImportant(t *testing.T) {
	comps, err := Parse("1px solid ! IMPORTANT")
	test.Error(t, err)
	comps, important := TrimImportant(comps)
	test.That(t, important)
	test.String(t, ComponentsString(comps, false), "1px solid")

	comps, _ = Parse("1px")
	_, important = TrimImportant(comps)
	test.That(t, !important)
}

func TestFromComponents(t *testing.T) {
	v := MustParse("a b, c / d")
	test.T(t, v.Kind, List)
	test.T(t, v.Sep, Comma)
	test.T(t, v.Len(), 2)
	test.T(t, v.Items[0].Sep, Space)
	test.T(t, v.Items[1].Sep, Slash)
	test.String(t, ComponentsString(v.Components(), false), "a b, c / d")
}

func TestMinifyNumber(t *testing.T) {
	var tests = []struct {
		number   string
		expected string
	}{
		{"0", "0"},
		{"0px", "0px"},
		{"0.0", "0"},
		{"0.50", ".5"},
		{"1.0em", "1em"},
		{"-0.5", "-.5"},
		{"100", "100"},
		{"1.50%", "1.5%"},
		{"3500ms", "3500ms"},
		{"-0.250turn", "-.25turn"},
	}
	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			test.String(t, minifyNumber(tt.number), tt.expected)
		})
	}
}

func TestUnterminated(t *testing.T) {
	var tests = []struct {
		input    string
		expected string
	}{
		{`"abc`, `"abc"`},
		{`'abc`, `'abc'`},
		{`"a\`, `"a"`},
		{`"a\"b`, `"a\"b"`},
		{`12px "serif`, `12px "serif"`},
		{`"done" 'open`, `"done" 'open'`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			comps, err := Parse(tt.input)
			test.Error(t, err)
			test.String(t, ComponentsString(comps, false), tt.expected)
		})
	}
}

func TestTerminate(t *testing.T) {
	var tests = []struct {
		input    string
		expected string
	}{
		{`1px 2px`, `1px 2px`},
		{`"abc`, `"abc"`},
		{`foo(1, "x`, `foo(1, "x")`},
		{`[a (b`, `[a (b)]`},
		{`{ a: "b`, `{ a: "b"}`},
		{`f(a) [b] c`, `f(a) [b] c`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			test.String(t, Terminate(tt.input), tt.expected)
		})
	}
}

func TestClassify(t *testing.T) {
	var tests = []struct {
		input string
		check func(Value) bool
		is    bool
	}{
		{"INHERIT", IsCSSWide, true},
		{"revert-layer", IsCSSWide, true},
		{"auto", IsCSSWide, false},
		{"2em", IsLength, true},
		{"0", IsLength, true},
		{"2", IsLength, false},
		{"2s", IsLength, false},
		{"calc(1px + 2em)", IsLength, true},
		{"50%", IsLengthPercentage, true},
		{"200ms", IsTime, true},
		{"Red", IsColor, true},
		{"currentColor", IsColor, true},
		{"#abc", IsColor, true},
		{"hsl(0 0% 0%)", IsColor, true},
		{"solid", IsColor, false},
		{"url(a.png)", IsImage, true},
		{"linear-gradient(red, blue)", IsImage, true},
		{"-webkit-linear-gradient(red, blue)", IsImage, true},
		{"var(--x)", IsReference, true},
		{"-moz-something(1)", IsUnknownVendorFunction, true},
		{"-webkit-calc(1px)", IsUnknownVendorFunction, false},
		{"steps(4, end)", IsTimingFunction, true},
		{"ease-in", IsTimingFunction, true},
		{"1.5", IsInteger, false},
		{"3", IsInteger, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			comps, err := Parse(tt.input)
			test.Error(t, err)
			test.T(t, tt.check(comps[0]), tt.is)
		})
	}
}

func TestHasReference(t *testing.T) {
	comps, _ := Parse("0 calc(var(--a) * 2)")
	test.That(t, HasReference(comps))
	comps, _ = Parse("0 calc(1px * 2)")
	test.That(t, !HasReference(comps))
}

func TestWriterSlash(t *testing.T) {
	comps, err := Parse("1px 2px / 3px, 4px")
	test.Error(t, err)
	test.String(t, ComponentsString(comps, false), "1px 2px / 3px, 4px")
	test.String(t, ComponentsString(comps, true), "1px 2px/3px,4px")
	test.String(t, string(Writer{Minify: true, SpacedSlash: true}.AppendComponents(nil, comps)), "1px 2px / 3px,4px")

	comps, err = Parse("rgb(0 0 0 / 0.50)")
	test.Error(t, err)
	test.String(t, string(Writer{Minify: true, SpacedSlash: true}.AppendComponents(nil, comps)), "rgb(0 0 0/.5)")
}
