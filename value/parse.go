package value

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	strconvParse "github.com/tdewolff/parse/v2/strconv"
)

// ErrEmpty is returned when a value contains no components.
var ErrEmpty = errors.New("empty value")

// ErrUnexpectedToken is wrapped by errors for tokens that cannot appear inside a property value.
var ErrUnexpectedToken = errors.New("unexpected token")

// Parse tokenizes a property value and returns its flat component sequence. Top-level commas and slashes are returned as Operator values. Whitespace and comments are dropped.
func Parse(s string) ([]Value, error) {
	l := css.NewLexer(parse.NewInputString(s))
	toks := []css.Token{}
	for {
		tt, data := l.Next()
		if tt == css.ErrorToken {
			if err := l.Err(); err != io.EOF {
				return nil, err
			}
			break
		}
		toks = append(toks, css.Token{TokenType: tt, Data: parse.Copy(data)})
	}
	return FromTokens(toks)
}

// FromTokens converts tokens from a css.Lexer or the values of a css.Parser declaration into a flat component sequence.
func FromTokens(toks []css.Token) ([]Value, error) {
	p := &parser{toks: toks}
	comps, err := p.parse(css.ErrorToken)
	if err != nil {
		return nil, err
	} else if len(comps) == 0 {
		return nil, ErrEmpty
	}
	return comps, nil
}

type parser struct {
	toks []css.Token
	pos  int
}

// parse reads components until the closing token end, or until the end of input.
func (p *parser) parse(end css.TokenType) ([]Value, error) {
	comps := []Value{}
	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]
		p.pos++

		tt, data := tok.TokenType, string(tok.Data)
		if tt == end {
			return comps, nil
		}
		switch tt {
		case css.WhitespaceToken, css.CommentToken:
			// separator only
		case css.CustomPropertyNameToken:
			if p.pos < len(p.toks) && p.toks[p.pos].TokenType == css.LeftParenthesisToken {
				// custom function --name()
				p.pos++
				args, err := p.parse(css.RightParenthesisToken)
				if err != nil {
					return nil, err
				}
				comps = append(comps, Value{Kind: Function, Text: data, Items: args})
				break
			}
			comps = append(comps, Value{Kind: Keyword, Text: data})
		case css.IdentToken, css.UnicodeRangeToken:
			comps = append(comps, Value{Kind: Keyword, Text: data})
		case css.NumberToken:
			num, _ := strconvParse.ParseFloat(tok.Data)
			comps = append(comps, Value{Kind: Number, Text: data, Num: num})
		case css.PercentageToken:
			num, _ := strconvParse.ParseFloat(tok.Data)
			comps = append(comps, Value{Kind: Percentage, Text: data, Num: num})
		case css.DimensionToken:
			num, n := strconvParse.ParseFloat(tok.Data)
			comps = append(comps, Value{Kind: Dimension, Text: data, Num: num, Unit: strings.ToLower(data[n:])})
		case css.HashToken:
			comps = append(comps, Value{Kind: Color, Text: data})
		case css.StringToken:
			comps = append(comps, Value{Kind: String, Text: closeString(data)})
		case css.URLToken:
			comps = append(comps, Value{Kind: URL, Text: closeURL(data)})
		case css.CommaToken:
			comps = append(comps, Value{Kind: Operator, Text: ","})
		case css.DelimToken:
			comps = append(comps, Value{Kind: Operator, Text: data})
		case css.FunctionToken, css.LeftParenthesisToken:
			args, err := p.parse(css.RightParenthesisToken)
			if err != nil {
				return nil, err
			}
			comps = append(comps, Value{Kind: Function, Text: strings.TrimSuffix(data, "("), Items: args})
		case css.LeftBracketToken:
			names, err := p.parse(css.RightBracketToken)
			if err != nil {
				return nil, err
			}
			comps = append(comps, Value{Kind: LineNames, Items: names})
		default:
			return nil, fmt.Errorf("%w %s %q", ErrUnexpectedToken, tt, data)
		}
	}
	return comps, nil
}

// closeString adds the closing quote of a string that ran to the end of the input.
func closeString(s string) string {
	quote := s[0]
	escaped := false
	for i := 1; i < len(s); i++ {
		if escaped {
			escaped = false
		} else if s[i] == '\\' {
			escaped = true
		} else if s[i] == quote {
			return s
		}
	}
	if escaped {
		s = s[:len(s)-1] // an escape at the end of the input is dropped
	}
	return s + string(quote)
}

// closeURL adds the closing parenthesis of a url() that ran to the end of the input.
func closeURL(s string) string {
	if strings.HasSuffix(s, ")") {
		n := len(s) - 1
		for 0 < n && s[n-1] == '\\' {
			n--
		}
		if (len(s)-1-n)%2 == 0 {
			return s
		}
	}
	return strings.TrimRight(s, " \t\n\r\f") + ")"
}

// Terminate closes the strings, urls and blocks that run to the end of s, such as in the raw text of a custom property.
func Terminate(s string) string {
	l := css.NewLexer(parse.NewInputString(s))
	sb := strings.Builder{}
	closers := []byte{}
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			for i := len(closers) - 1; 0 <= i; i-- {
				sb.WriteByte(closers[i])
			}
			return sb.String()
		case css.StringToken:
			sb.WriteString(closeString(string(data)))
			continue
		case css.URLToken:
			sb.WriteString(closeURL(string(data)))
			continue
		case css.FunctionToken, css.LeftParenthesisToken:
			closers = append(closers, ')')
		case css.LeftBracketToken:
			closers = append(closers, ']')
		case css.LeftBraceToken:
			closers = append(closers, '}')
		case css.RightParenthesisToken, css.RightBracketToken, css.RightBraceToken:
			if 0 < len(closers) {
				closers = closers[:len(closers)-1]
			}
		}
		sb.Write(data)
	}
}

// TrimImportant strips a trailing !important from the component sequence.
func TrimImportant(comps []Value) ([]Value, bool) {
	if n := len(comps); 2 <= n && comps[n-2].IsOperator("!") && comps[n-1].Is("important") {
		return comps[:n-2], true
	}
	return comps, false
}

// Split splits a flat component sequence at the top-level operator op, which is either "," or "/".
func Split(comps []Value, op string) [][]Value {
	parts := [][]Value{}
	start := 0
	for i, comp := range comps {
		if comp.IsOperator(op) {
			parts = append(parts, comps[start:i])
			start = i + 1
		}
	}
	return append(parts, comps[start:])
}

// SplitComma splits a flat component sequence into its comma-separated segments.
func SplitComma(comps []Value) [][]Value {
	return Split(comps, ",")
}

// SplitSlash splits a flat component sequence into its slash-separated segments.
func SplitSlash(comps []Value) [][]Value {
	return Split(comps, "/")
}

// FromComponents builds a nested value from a flat component sequence: a comma list of slash lists of space lists, omitting levels with a single item.
func FromComponents(comps []Value) Value {
	if len(comps) == 0 {
		return Value{}
	}
	segments := SplitComma(comps)
	commaItems := make([]Value, 0, len(segments))
	for _, segment := range segments {
		parts := SplitSlash(segment)
		slashItems := make([]Value, 0, len(parts))
		for _, part := range parts {
			slashItems = append(slashItems, NewList(Space, part...))
		}
		commaItems = append(commaItems, NewList(Slash, slashItems...))
	}
	return NewList(Comma, commaItems...)
}

// MustParse is like Parse but returns a single nested value and panics on error. It is used for static tables.
func MustParse(s string) Value {
	comps, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return FromComponents(comps)
}
