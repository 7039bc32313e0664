package cssom

import (
	"sort"

	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/shorthand"
	"github.com/tdewolff/cssom/value"
)

// Mode is the output format of a declaration block.
type Mode int

// Mode values.
const (
	Verbose   Mode = iota // name: value; with spaces after separators
	Minified              // no optional whitespace, no trailing semicolon
	Optimized             // Minified, leaving out values implied by the grid grammars
	Expanded              // Verbose with longhands only
)

var modeNames = map[Mode]string{
	Verbose:   "verbose",
	Minified:  "minified",
	Optimized: "optimized",
	Expanded:  "expanded",
}

func (m Mode) String() string {
	return modeNames[m]
}

// ParseMode returns the mode by name.
func ParseMode(name string) (Mode, bool) {
	for m, s := range modeNames {
		if s == name {
			return m, true
		}
	}
	return Verbose, false
}

// item is a single serialized declaration.
type item struct {
	name      string
	comps     []value.Value
	important bool
}

func longhandItem(name string, r record) item {
	return item{name: name, comps: r.val.Components(), important: r.important}
}

// items recomposes the declaration into shorthands where the longhands of a shorthand write are all still present with the values it assigned. Writes are emitted in order so that later writes override earlier ones.
func (d *Declaration) items(optimize, recompose bool) []item {
	// current records per write
	current := map[int][]*slot{}
	for _, s := range d.slots {
		id := s.top().id
		current[id] = append(current[id], s)
	}
	ids := make([]int, 0, len(current))
	for id := range current {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	items := []item{}
	for _, id := range ids {
		w := d.writes[id]
		s := property.Lookup(w.name)
		if s == nil {
			for _, sl := range current[id] {
				items = append(items, longhandItem(sl.name, sl.top()))
			}
			continue
		}

		recs := make([]record, 0, len(s.Longhands))
		for _, longhand := range s.Longhands {
			if sl := d.slot(longhand); sl != nil {
				if r, ok := sl.find(id); ok {
					recs = append(recs, r)
				}
			}
		}
		if w.pending {
			// unresolved longhands are only representable by the literal shorthand
			items = append(items, item{name: w.name, comps: w.comps, important: w.important})
			continue
		} else if recompose && len(recs) == len(s.Longhands) {
			vals := make([]value.Value, len(recs))
			for i, r := range recs {
				vals[i] = r.val
			}
			if comps, ok := shorthand.Compose(s, vals, optimize); ok {
				items = append(items, item{name: w.name, comps: comps, important: w.important})
				continue
			}
		}

		// emit the current longhands in table order
		for _, longhand := range s.Longhands {
			for _, sl := range current[id] {
				if sl.name == longhand {
					items = append(items, longhandItem(sl.name, sl.top()))
				}
			}
		}
	}
	return items
}

// Format serializes the declaration block in the given mode.
func (d *Declaration) Format(mode Mode) string {
	items := d.items(mode == Optimized, mode != Expanded)
	minify := mode == Minified || mode == Optimized

	b := []byte{}
	for i, it := range items {
		if minify && 0 < i {
			b = append(b, ';')
		}
		b = append(b, it.name...)
		b = append(b, ':')
		if !minify {
			b = append(b, ' ')
		}
		if property.IsCustom(it.name) {
			b = append(b, it.comps[0].Text...)
		} else {
			w := value.Writer{Minify: minify, SpacedSlash: shorthand.SpacedSlash(it.name)}
			b = w.AppendComponents(b, it.comps)
		}
		if it.important {
			if !minify {
				b = append(b, ' ')
			}
			b = append(b, "!important"...)
		}
		if !minify {
			b = append(b, "; "...)
		}
	}
	return string(b)
}

// Serialize returns the verbose serialization, eg. "border: 1px dashed blue; ".
func (d *Declaration) Serialize() string {
	return d.Format(Verbose)
}

// Minify returns the minified serialization, eg. "border:1px dashed blue".
func (d *Declaration) Minify() string {
	return d.Format(Minified)
}

// Optimize returns the minified serialization without values implied by the grid grammars.
func (d *Declaration) Optimize() string {
	return d.Format(Optimized)
}

// Expanded returns the verbose serialization of all longhands without recomposing shorthands.
func (d *Declaration) Expanded() string {
	return d.Format(Expanded)
}

// String implements fmt.Stringer.
func (d *Declaration) String() string {
	return d.Serialize()
}
