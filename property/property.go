// Package property holds the static table of CSS shorthand properties, their longhands in canonical order and the initial value of each longhand.
package property

import (
	"strings"

	"github.com/tdewolff/cssom/value"
)

// Kind is the grammar family of a shorthand.
type Kind uint8

// Kind values.
const (
	Edge         Kind = iota // 1-4 values for top, right, bottom and left
	Logical                  // 1-2 values for start and end
	Side                     // width, style and color in any order
	Border                   // Side for all four sides, resets border-image
	Composite                // a property-specific grammar without layers
	Pair                     // 1-2 values, the second defaults to the first
	Layered                  // comma-separated layers
	Font                     // font grammar with system fonts and resets
	FontVariant              // font-variant axes
	GridTemplate             // rows / columns or the areas form
	Grid                     // grid-template or auto-flow forms
	GridRange                // grid placement with line mirroring
)

var kindNames = map[Kind]string{
	Edge:         "Edge",
	Logical:      "Logical",
	Side:         "Side",
	Border:       "Border",
	Composite:    "Composite",
	Pair:         "Pair",
	Layered:      "Layered",
	Font:         "Font",
	FontVariant:  "FontVariant",
	GridTemplate: "GridTemplate",
	Grid:         "Grid",
	GridRange:    "GridRange",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Shorthand is a shorthand property definition.
type Shorthand struct {
	Name      string
	Kind      Kind
	Longhands []string
	Initial   []value.Value // parallel to Longhands, zero for longhands without a serializable initial value

	// AllowWideToken allows a CSS-wide keyword as one of several positional tokens (eg. margin: 1px inherit)
	AllowWideToken bool

	// Assigned is the number of leading longhands the grammar sets, the others are always reset to their initial value
	Assigned int
}

// Index returns the position of longhand in s.Longhands, or -1.
func (s *Shorthand) Index(longhand string) int {
	for i, name := range s.Longhands {
		if name == longhand {
			return i
		}
	}
	return -1
}

// InitialValues returns a fresh copy of the initial values.
func (s *Shorthand) InitialValues() []value.Value {
	vals := make([]value.Value, len(s.Initial))
	copy(vals, s.Initial)
	return vals
}

var shorthands = map[string]*Shorthand{}
var owners = map[string][]*Shorthand{}

// Lookup returns the definition of a shorthand property or nil.
func Lookup(name string) *Shorthand {
	return shorthands[name]
}

// IsShorthand returns true if name is a known shorthand property.
func IsShorthand(name string) bool {
	_, ok := shorthands[name]
	return ok
}

// Owners returns the shorthands that include longhand, in table order.
func Owners(longhand string) []*Shorthand {
	return owners[longhand]
}

// Normalize lowercases a property name, custom properties are case-sensitive and kept as is.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	return strings.ToLower(name)
}

// IsCustom returns true for custom property names.
func IsCustom(name string) bool {
	return strings.HasPrefix(name, "--")
}

func define(name string, kind Kind, pairs ...string) *Shorthand {
	s := &Shorthand{Name: name, Kind: kind}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Longhands = append(s.Longhands, pairs[i])
		var initial value.Value
		if pairs[i+1] != "" {
			initial = value.MustParse(pairs[i+1])
		}
		s.Initial = append(s.Initial, initial)
	}
	s.Assigned = len(s.Longhands)
	shorthands[name] = s
	for _, longhand := range s.Longhands {
		owners[longhand] = append(owners[longhand], s)
	}
	return s
}
