package value

import (
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2"
)

// Writer serializes values. The zero Writer writes the verbose form.
type Writer struct {
	Minify bool

	// SpacedSlash keeps the spaces around slashes when minifying
	SpacedSlash bool
}

// String returns the verbose serialization: lists separated by a space, ", " or " / ".
func (v Value) String() string {
	return string(Writer{}.Append(nil, v))
}

// Minify returns the minified serialization: no optional whitespace and decimals without a leading zero.
func (v Value) Minify() string {
	return string(Writer{Minify: true}.Append(nil, v))
}

// Append appends the serialization of v to b.
func (w Writer) Append(b []byte, v Value) []byte {
	switch v.Kind {
	case Dimension, Number, Percentage:
		if w.Minify {
			return append(b, minifyNumber(v.Text)...)
		}
		return append(b, v.Text...)
	case Function:
		b = append(b, v.Text...)
		b = append(b, '(')
		b = Writer{Minify: w.Minify}.AppendComponents(b, v.Items)
		return append(b, ')')
	case LineNames:
		b = append(b, '[')
		for i, name := range v.Items {
			if 0 < i {
				b = append(b, ' ')
			}
			b = w.Append(b, name)
		}
		return append(b, ']')
	case List:
		for i, item := range v.Items {
			if 0 < i {
				switch v.Sep {
				case Space:
					b = append(b, ' ')
				case Comma:
					b = w.appendComma(b)
				case Slash:
					b = w.appendSlash(b)
				}
			}
			b = w.Append(b, item)
		}
		return b
	}
	return append(b, v.Text...)
}

func (w Writer) appendComma(b []byte) []byte {
	if w.Minify {
		return append(b, ',')
	}
	return append(b, ", "...)
}

func (w Writer) appendSlash(b []byte) []byte {
	if w.Minify && !w.SpacedSlash {
		return append(b, '/')
	}
	return append(b, " / "...)
}

// AppendComponents appends a flat component sequence, spacing operators the same way lists are spaced.
func (w Writer) AppendComponents(b []byte, comps []Value) []byte {
	prevSep := true
	for _, comp := range comps {
		if comp.IsOperator(",") {
			b = w.appendComma(b)
			prevSep = true
			continue
		} else if comp.IsOperator("/") {
			b = w.appendSlash(b)
			prevSep = true
			continue
		}
		if !prevSep {
			b = append(b, ' ')
		}
		b = w.Append(b, comp)
		prevSep = false
	}
	return b
}

// ComponentsString returns the serialization of a flat component sequence.
func ComponentsString(comps []Value, minify bool) string {
	return string(Writer{Minify: minify}.AppendComponents(nil, comps))
}

// minifyNumber minifies the numeric part of a number, percentage or dimension lexeme. Units are kept.
func minifyNumber(lexeme string) string {
	num := parse.Copy([]byte(lexeme))
	n, _ := parse.Dimension(num)
	if n == 0 {
		return lexeme
	}
	unit := lexeme[n:]
	return string(minify.Number(num[:n], 0)) + unit
}
