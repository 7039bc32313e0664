// Package value holds the property value model used by the shorthand engine: a tagged union over CSS component values that keeps numeric lexemes verbatim.
package value

import (
	"strconv"
	"strings"
)

// Kind is the variant of a Value.
type Kind uint8

// Kind values.
const (
	Keyword Kind = iota
	Dimension
	Number
	Percentage
	Color
	String
	URL
	Function
	List
	LineNames // bracketed grid line names, eg. [a b]
	Operator  // top-level comma or slash, or a delimiter inside a function
)

var kindNames = [...]string{"Keyword", "Dimension", "Number", "Percentage", "Color", "String", "URL", "Function", "List", "LineNames", "Operator"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Invalid(" + strconv.Itoa(int(k)) + ")"
}

// Separator is the separator between the items of a List.
type Separator uint8

// Separator values.
const (
	Space Separator = iota
	Comma
	Slash
)

// Value is a single CSS value. Text holds the verbatim lexeme for all kinds except List and LineNames; for Function it is the function name without parenthesis.
type Value struct {
	Kind  Kind
	Text  string
	Num   float64 // only for Dimension, Number and Percentage
	Unit  string  // only for Dimension
	Sep   Separator
	Items []Value // List items, LineNames names, or the flat argument components of a Function
}

// NewKeyword returns an identifier value.
func NewKeyword(ident string) Value {
	return Value{Kind: Keyword, Text: ident}
}

// NewList returns a list of items, or the item itself when there is only one.
func NewList(sep Separator, items ...Value) Value {
	if len(items) == 1 {
		return items[0]
	}
	return Value{Kind: List, Sep: sep, Items: items}
}

// IsZero returns true for the zero Value which signals an absent value.
func (v Value) IsZero() bool {
	return v.Kind == Keyword && v.Text == "" && len(v.Items) == 0
}

// Is returns true if v is the keyword ident, compared ASCII case-insensitively.
func (v Value) Is(ident string) bool {
	return v.Kind == Keyword && strings.EqualFold(v.Text, ident)
}

// IsOperator returns true if v is the given top-level operator.
func (v Value) IsOperator(op string) bool {
	return v.Kind == Operator && v.Text == op
}

// Name returns the lowercased function name.
func (v Value) Name() string {
	if v.Kind != Function {
		return ""
	}
	return strings.ToLower(v.Text)
}

// Len returns the number of items of a List, and 1 otherwise.
func (v Value) Len() int {
	if v.Kind == List {
		return len(v.Items)
	}
	return 1
}

// At returns the i-th item of a List of the given separator, a non-list value is its own single item.
func (v Value) At(sep Separator, i int) Value {
	if v.Kind == List && v.Sep == sep {
		return v.Items[i]
	}
	return v
}

// Split returns the items of v when it is a list with the given separator, otherwise it returns v as the only item.
func (v Value) Split(sep Separator) []Value {
	if v.Kind == List && v.Sep == sep {
		return v.Items
	}
	return []Value{v}
}

// Equal returns true if both values serialize to the same text.
func (v Value) Equal(w Value) bool {
	if v.Kind != w.Kind {
		// 0 and 0px are different lexemes and thus different values
		return false
	}
	return v.String() == w.String()
}

// EqualFold is like Equal but compares keywords case-insensitively.
func (v Value) EqualFold(w Value) bool {
	if v.Kind == Keyword && w.Kind == Keyword {
		return strings.EqualFold(v.Text, w.Text)
	}
	return v.Equal(w)
}

// Components returns the flat component sequence of v, with commas and slashes as Operator values. It is the inverse of FromComponents.
func (v Value) Components() []Value {
	if v.Kind != List {
		return []Value{v}
	}
	comps := []Value{}
	for i, item := range v.Items {
		if 0 < i {
			if v.Sep == Comma {
				comps = append(comps, Value{Kind: Operator, Text: ","})
			} else if v.Sep == Slash {
				comps = append(comps, Value{Kind: Operator, Text: "/"})
			}
		}
		comps = append(comps, item.Components()...)
	}
	return comps
}
