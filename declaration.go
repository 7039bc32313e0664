// Package cssom is a CSS declaration block that expands shorthand properties into their longhands, tracks priority and provenance per longhand, and serializes the result back into shorthands where possible.
package cssom

import (
	"io"
	"strings"

	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/shorthand"
	"github.com/tdewolff/cssom/value"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// record is the value a single write assigned to a longhand.
type record struct {
	val       value.Value
	pending   bool // set by a shorthand whose value contains var() or similar
	important bool
	id        int
	shorthand string // empty for explicit writes
}

// slot holds the records of one longhand in ascending write order, the last record is the current value.
type slot struct {
	name    string
	records []record
}

func (s *slot) top() record {
	return s.records[len(s.records)-1]
}

func (s *slot) find(id int) (record, bool) {
	for _, r := range s.records {
		if r.id == id {
			return r, true
		}
	}
	return record{}, false
}

// write is a single property assignment.
type write struct {
	name      string
	comps     []value.Value // literal value components
	pending   bool
	important bool
}

// Declaration is a CSS declaration block. It is not safe for concurrent use.
type Declaration struct {
	slots  []*slot
	writes map[int]write
	nextID int
	errs   ErrorHandler
}

// NewDeclaration returns an empty declaration block that reports failures to errs. If errs is nil, an ErrorList is used.
func NewDeclaration(errs ErrorHandler) *Declaration {
	if errs == nil {
		errs = &ErrorList{}
	}
	return &Declaration{
		writes: map[int]write{},
		errs:   errs,
	}
}

// ParseDeclaration returns a declaration block with the declarations of cssText applied in order.
func ParseDeclaration(cssText string, errs ErrorHandler) *Declaration {
	d := NewDeclaration(errs)
	d.SetPropertyText(cssText)
	return d
}

// Errors returns the error handler.
func (d *Declaration) Errors() ErrorHandler {
	return d.errs
}

// HasErrors returns true if any write failed.
func (d *Declaration) HasErrors() bool {
	return d.errs.HasErrors()
}

// HasWarnings returns true if any write reported a warning.
func (d *Declaration) HasWarnings() bool {
	return d.errs.HasWarnings()
}

// Length returns the number of longhands that hold a value, including unresolved ones.
func (d *Declaration) Length() int {
	return len(d.slots)
}

// Item returns the name of the i-th longhand, or an empty string when out of range.
func (d *Declaration) Item(i int) string {
	if i < 0 || len(d.slots) <= i {
		return ""
	}
	return d.slots[i].name
}

// Names returns the names of all longhands that hold a value, in the order they were first set.
func (d *Declaration) Names() []string {
	names := make([]string, len(d.slots))
	for i, s := range d.slots {
		names[i] = s.name
	}
	return names
}

func (d *Declaration) slot(name string) *slot {
	for _, s := range d.slots {
		if s.name == name {
			return s
		}
	}
	return nil
}

func (d *Declaration) deleteSlot(name string) {
	for i, s := range d.slots {
		if s.name == name {
			d.slots = append(d.slots[:i], d.slots[i+1:]...)
			return
		}
	}
}

// push adds a record to the slot of a longhand. It returns false when the slot holds an important value and the record is not important.
func (d *Declaration) push(name string, r record) bool {
	s := d.slot(name)
	if s == nil {
		s = &slot{name: name}
		d.slots = append(d.slots, s)
	} else if !r.important && s.top().important {
		return false
	}

	// a source has at most one record per slot
	for i, prev := range s.records {
		if prev.shorthand == r.shorthand {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	s.records = append(s.records, r)
	return true
}

func (d *Declaration) report(err error, name string) {
	if e, ok := err.(*shorthand.Error); ok {
		if e.Property != "" {
			name = e.Property
		}
		d.errs.Report(e.Kind, name, e.Message)
		return
	}
	d.errs.Report(SyntaxError, name, err.Error())
}

// set applies a write of components to a longhand or a shorthand. Failures are reported and leave the declaration unchanged.
func (d *Declaration) set(name string, comps []value.Value, important bool) bool {
	if s := property.Lookup(name); s != nil {
		res, err := shorthand.Expand(name, comps)
		if err != nil {
			d.report(err, name)
			return false
		}

		id := d.nextID
		d.nextID++
		d.writes[id] = write{name: name, comps: comps, pending: res.Pending, important: important}
		if res.Pending {
			d.errs.ReportWarning(UnresolvedReferenceWarning, name, "value depends on "+res.Text)
		}
		for i, longhand := range s.Longhands {
			r := record{pending: res.Pending, important: important, id: id, shorthand: name}
			if !res.Pending {
				r.val = res.Values[i]
			}
			d.push(longhand, r)
		}
		return true
	}

	id := d.nextID
	d.nextID++
	d.writes[id] = write{name: name, comps: comps, important: important}
	d.push(name, record{val: value.FromComponents(comps), important: important, id: id})
	return true
}

func (d *Declaration) setCustom(name, text string, important bool) bool {
	id := d.nextID
	d.nextID++
	v := value.Value{Kind: value.Keyword, Text: value.Terminate(text)}
	d.writes[id] = write{name: name, comps: []value.Value{v}, important: important}
	d.push(name, record{val: v, important: important, id: id})
	return true
}

// SetPropertyTokens sets a longhand or shorthand from the value tokens of a css.Parser declaration, which may end in !important. It returns false if the write failed.
func (d *Declaration) SetPropertyTokens(name string, toks []css.Token) bool {
	name = property.Normalize(name)
	comps, err := value.FromTokens(toks)
	if err != nil {
		d.report(err, name)
		return false
	}
	comps, important := value.TrimImportant(comps)
	if len(comps) == 0 {
		d.errs.Report(SyntaxError, name, "empty value")
		return false
	}
	return d.set(name, comps, important)
}

// SetPropertyText applies every declaration of the form name: value [!important] in cssText, in order. It returns false if any of them failed.
func (d *Declaration) SetPropertyText(cssText string) bool {
	ok := true
	p := css.NewParser(parse.NewInputString(cssText), true)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if _, isParseErr := p.Err().(*parse.Error); isParseErr {
				d.errs.Report(SyntaxError, "", p.Err().Error())
				ok = false
				continue
			} else if p.Err() != io.EOF {
				d.errs.Report(SyntaxError, "", p.Err().Error())
				ok = false
			}
			return ok
		case css.DeclarationGrammar:
			ok = d.SetPropertyTokens(string(data), p.Values()) && ok
		case css.CustomPropertyGrammar:
			text, important := trimImportantText(string(p.Values()[0].Data))
			ok = d.setCustom(string(data), text, important) && ok
		}
	}
}

// SetCSSText replaces all declarations by those of cssText.
func (d *Declaration) SetCSSText(cssText string) bool {
	d.slots = d.slots[:0]
	d.writes = map[int]write{}
	return d.SetPropertyText(cssText)
}

func trimImportantText(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if i := strings.LastIndexByte(text, '!'); i != -1 && strings.EqualFold(strings.TrimSpace(text[i+1:]), "important") {
		return strings.TrimSpace(text[:i]), true
	}
	return text, false
}

// SetProperty sets a longhand or shorthand to the value text. Priority is either empty or "important".
func (d *Declaration) SetProperty(name, val, priority string) bool {
	name = property.Normalize(name)
	important := strings.EqualFold(priority, "important")
	if !important && priority != "" {
		d.errs.Report(SyntaxError, name, "invalid priority "+priority)
		return false
	}
	if property.IsCustom(name) {
		text, imp := trimImportantText(val)
		return d.setCustom(name, text, important || imp)
	}

	comps, err := value.Parse(val)
	if err != nil {
		d.report(err, name)
		return false
	}
	comps, imp := value.TrimImportant(comps)
	if len(comps) == 0 {
		d.errs.Report(SyntaxError, name, "empty value")
		return false
	}
	return d.set(name, comps, important || imp)
}

// current returns the current records of the longhands of s, or false when any of them has no value.
func (d *Declaration) current(s *property.Shorthand) ([]record, bool) {
	recs := make([]record, len(s.Longhands))
	for i, longhand := range s.Longhands {
		sl := d.slot(longhand)
		if sl == nil {
			return nil, false
		}
		recs[i] = sl.top()
	}
	return recs, true
}

// GetPropertyValue returns the value text of a longhand or shorthand. It returns an empty string when the property is not set, when its value is unresolved, or when a shorthand cannot represent the current longhands.
func (d *Declaration) GetPropertyValue(name string) string {
	name = property.Normalize(name)
	s := property.Lookup(name)
	if s == nil {
		sl := d.slot(name)
		if sl == nil || sl.top().pending {
			return ""
		}
		return sl.top().val.String()
	}

	recs, ok := d.current(s)
	if !ok {
		return ""
	}
	pending := 0
	for _, r := range recs {
		if r.pending {
			pending++
		}
		if r.important != recs[0].important {
			return ""
		}
	}
	if pending == len(recs) {
		for _, r := range recs[1:] {
			if r.id != recs[0].id {
				return ""
			}
		}
		return value.ComponentsString(d.writes[recs[0].id].comps, false)
	} else if 0 < pending {
		return ""
	}

	vals := make([]value.Value, len(recs))
	for i, r := range recs {
		vals[i] = r.val
	}
	comps, ok := shorthand.Compose(s, vals, false)
	if !ok {
		return ""
	}
	return value.ComponentsString(comps, false)
}

// GetPropertyPriority returns "important" when the property is set with !important, a shorthand is important when all its longhands are.
func (d *Declaration) GetPropertyPriority(name string) string {
	name = property.Normalize(name)
	if s := property.Lookup(name); s != nil {
		recs, ok := d.current(s)
		if !ok {
			return ""
		}
		for _, r := range recs {
			if !r.important {
				return ""
			}
		}
		return "important"
	} else if sl := d.slot(name); sl != nil && sl.top().important {
		return "important"
	}
	return ""
}

// RemoveProperty removes a property and returns its previous value text. Removing an explicitly set longhand restores the value implied by an earlier shorthand, if any. A longhand whose value was set by a shorthand is left in place and an empty string is returned.
func (d *Declaration) RemoveProperty(name string) string {
	name = property.Normalize(name)
	if s := property.Lookup(name); s != nil {
		prev := d.GetPropertyValue(name)
		for _, longhand := range s.Longhands {
			d.deleteSlot(longhand)
		}
		return prev
	}

	sl := d.slot(name)
	if sl == nil || sl.top().shorthand != "" {
		return ""
	}
	prev := sl.top().val.String()
	sl.records = sl.records[:len(sl.records)-1]
	if len(sl.records) == 0 {
		d.deleteSlot(name)
	}
	return prev
}
