package shorthand

import (
	"io"

	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

const (
	gridTemplateRows = iota
	gridTemplateColumns
	gridTemplateAreas
	gridAutoRows
	gridAutoColumns
	gridAutoFlow
)

var trackKeywords = []string{"auto", "min-content", "max-content"}

// isTrackSize returns true for a single track size, repeat() is excluded.
func isTrackSize(v value.Value) bool {
	if v.Kind == value.Dimension && v.Unit == "fr" {
		return value.IsNonNegative(v)
	}
	return value.IsLengthPercentage(v) && value.IsNonNegative(v) || value.IsKeyword(v, trackKeywords...) || v.Name() == "minmax" || v.Name() == "fit-content"
}

// isTrackList returns true for none or a sequence of track sizes and repeat() with line names that are never adjacent.
func isTrackList(comps []value.Value) bool {
	if len(comps) == 1 && comps[0].Is("none") {
		return true
	}
	tracks := 0
	prevNames := false
	for _, comp := range comps {
		if comp.Kind == value.LineNames {
			if prevNames {
				return false
			}
			prevNames = true
			continue
		} else if !isTrackSize(comp) && comp.Name() != "repeat" {
			return false
		}
		prevNames = false
		tracks++
	}
	return 0 < tracks
}

// areaCells tokenizes the contents of a template area string into its cells, an empty name is a null cell.
func areaCells(s value.Value) ([]string, error) {
	text := s.Text
	if 2 <= len(text) {
		text = text[1 : len(text)-1]
	}
	cells := []string{}
	prevDot := false
	l := css.NewLexer(parse.NewInputString(text))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			if l.Err() != io.EOF {
				return nil, syntaxError("invalid area string %s", s.Text)
			} else if len(cells) == 0 {
				return nil, syntaxError("empty area string")
			}
			return cells, nil
		case css.IdentToken:
			cells = append(cells, string(data))
			prevDot = false
		case css.DelimToken:
			if data[0] != '.' {
				return nil, syntaxError("invalid area string %s", s.Text)
			} else if !prevDot {
				cells = append(cells, "")
			}
			prevDot = true
		case css.WhitespaceToken:
			prevDot = false
		default:
			return nil, syntaxError("invalid area string %s", s.Text)
		}
	}
}

type cell struct{ x, y int }

// checkAreas verifies that all rows have the same number of cells and that every named area is a rectangle.
func checkAreas(strs []value.Value) error {
	rows := [][]string{}
	for _, s := range strs {
		cells, err := areaCells(s)
		if err != nil {
			return err
		} else if 0 < len(rows) && len(cells) != len(rows[0]) {
			return syntaxError("area rows of unequal length")
		}
		rows = append(rows, cells)
	}

	covered := map[cell]bool{}
	seen := map[string]bool{}
	for y, row := range rows {
		for x, name := range row {
			if name == "" || covered[cell{x, y}] {
				continue
			} else if seen[name] {
				return syntaxError("area %s is not a rectangle", name)
			}
			seen[name] = true

			nx := x
			for nx < len(row) && row[nx] == name {
				covered[cell{nx, y}] = true
				nx++
			}
			for ny := y + 1; ny < len(rows); ny++ {
				full := true
				for i := x; i < nx; i++ {
					full = full && rows[ny][i] == name
				}
				if !full {
					break
				}
				for i := x; i < nx; i++ {
					covered[cell{i, ny}] = true
				}
			}
		}
	}
	return nil
}

// mergeLineNames returns the line names of both groups as one group, or nil when there are none.
func mergeLineNames(a, b []value.Value) []value.Value {
	names := append(append([]value.Value{}, a...), b...)
	if len(names) == 0 {
		return nil
	}
	return []value.Value{{Kind: value.LineNames, Items: names}}
}

// parseAreaRows parses [<line-names>? <string> <track-size>? <line-names>?]+ into row tracks and area strings. Omitted row sizes are auto and the trailing names of one row merge with the leading names of the next.
func parseAreaRows(comps []value.Value) (rows, areas []value.Value, err error) {
	var trailing []value.Value
	for i := 0; i < len(comps); {
		var leading []value.Value
		if comps[i].Kind == value.LineNames {
			leading = comps[i].Items
			i++
		}
		if len(comps) <= i || comps[i].Kind != value.String {
			return nil, nil, syntaxError("expected area string")
		}
		areas = append(areas, comps[i])
		i++

		size := value.NewKeyword("auto")
		if i < len(comps) && isTrackSize(comps[i]) {
			size = comps[i]
			i++
		}
		rows = append(rows, mergeLineNames(trailing, leading)...)
		rows = append(rows, size)

		trailing = nil
		if i < len(comps) && comps[i].Kind == value.LineNames {
			trailing = comps[i].Items
			i++
		}
	}
	rows = append(rows, mergeLineNames(trailing, nil)...)
	if err := checkAreas(areas); err != nil {
		return nil, nil, err
	}
	return rows, areas, nil
}

// expandTemplate parses the grid-template grammar into rows, columns and areas.
func expandTemplate(comps []value.Value) ([]value.Value, error) {
	none := value.NewKeyword("none")
	if len(comps) == 1 && comps[0].Is("none") {
		return []value.Value{none, none, none}, nil
	}

	parts := value.SplitSlash(comps)
	if 2 < len(parts) {
		return nil, syntaxError("more than one slash")
	}
	for _, part := range parts {
		if len(part) == 0 {
			return nil, syntaxError("empty track list around slash")
		}
	}

	hasAreas := false
	for _, comp := range parts[0] {
		hasAreas = hasAreas || comp.Kind == value.String
	}
	if hasAreas {
		rows, areas, err := parseAreaRows(parts[0])
		if err != nil {
			return nil, err
		}
		columns := none
		if len(parts) == 2 {
			if !isTrackList(parts[1]) || parts[1][0].Is("none") {
				return nil, syntaxError("invalid column track list")
			}
			columns = value.NewList(value.Space, parts[1]...)
		}
		return []value.Value{value.NewList(value.Space, rows...), columns, value.NewList(value.Space, areas...)}, nil
	} else if len(parts) != 2 {
		return nil, syntaxError("expected rows / columns")
	} else if !isTrackList(parts[0]) || !isTrackList(parts[1]) {
		return nil, syntaxError("invalid track list")
	}
	return []value.Value{value.NewList(value.Space, parts[0]...), value.NewList(value.Space, parts[1]...), none}, nil
}

func expandGridTemplate(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	return expandTemplate(comps)
}

// expandGrid parses <grid-template> | <rows> / auto-flow && dense? <auto-columns>? | auto-flow && dense? <auto-rows>? / <columns>.
func expandGrid(s *property.Shorthand, comps []value.Value) ([]value.Value, error) {
	vals := s.InitialValues()
	autoFlow := false
	for _, comp := range comps {
		autoFlow = autoFlow || comp.Is("auto-flow")
	}
	if !autoFlow {
		template, err := expandTemplate(comps)
		if err != nil {
			return nil, err
		}
		copy(vals, template)
		return vals, nil
	}

	parts := value.SplitSlash(comps)
	if len(parts) != 2 {
		return nil, syntaxError("expected exactly one slash")
	}
	side := -1
	var dense value.Value
	tracks := [2][]value.Value{}
	for k, part := range parts {
		for _, comp := range part {
			if comp.Is("auto-flow") && side == -1 {
				side = k
			} else if comp.Is("dense") && dense.IsZero() {
				dense = comp
			} else if value.IsKeyword(comp, "auto-flow", "dense") {
				return nil, syntaxError("duplicate %s", comp.Text)
			} else {
				tracks[k] = append(tracks[k], comp)
			}
		}
	}
	if !dense.IsZero() && !partHas(parts[side], dense) {
		return nil, syntaxError("dense without auto-flow")
	}

	other := 1 - side
	if !isTrackList(tracks[other]) {
		return nil, syntaxError("invalid track list")
	}
	for _, comp := range tracks[side] {
		if !isTrackSize(comp) {
			return nil, syntaxError("invalid auto track size %s", comp.String())
		}
	}

	flow := value.NewKeyword("row")
	templateIndex, autoIndex := gridTemplateColumns, gridAutoRows
	if side == 1 {
		flow = value.NewKeyword("column")
		templateIndex, autoIndex = gridTemplateRows, gridAutoColumns
	}
	if !dense.IsZero() {
		flow = value.NewList(value.Space, flow, dense)
	}
	vals[gridAutoFlow] = flow
	vals[templateIndex] = value.NewList(value.Space, tracks[other]...)
	if 0 < len(tracks[side]) {
		vals[autoIndex] = value.NewList(value.Space, tracks[side]...)
	}
	return vals, nil
}

func partHas(comps []value.Value, v value.Value) bool {
	for _, comp := range comps {
		if comp.Is(v.Text) {
			return true
		}
	}
	return false
}

// composeTemplate emits the grid-template form of rows, columns and areas.
func composeTemplate(vals []value.Value, optimize bool) []value.Value {
	rows, columns, areas := vals[gridTemplateRows], vals[gridTemplateColumns], vals[gridTemplateAreas]
	slash := value.Value{Kind: value.Operator, Text: "/"}
	if areas.Is("none") {
		if rows.Is("none") && columns.Is("none") {
			return []value.Value{rows}
		}
		comps := append(rows.Components(), slash)
		return append(comps, columns.Components()...)
	} else if rows.Is("none") {
		return nil
	}

	// interleave the area strings with the row sizes and their line names
	strs := areas.Split(value.Space)
	tracks := rows.Split(value.Space)
	comps := []value.Value{}
	k := 0
	for _, track := range tracks {
		if track.Kind == value.LineNames {
			comps = append(comps, track)
			continue
		} else if len(strs) <= k || !isTrackSize(track) {
			return nil
		}
		comps = append(comps, strs[k])
		if !optimize || !track.Is("auto") {
			comps = append(comps, track)
		}
		k++
	}
	if k != len(strs) {
		return nil
	}
	if !columns.Is("none") {
		comps = append(comps, slash)
		comps = append(comps, columns.Components()...)
	}
	return comps
}

func composeGridTemplate(s *property.Shorthand, vals []value.Value, optimize bool) [][]value.Value {
	if comps := composeTemplate(vals, optimize); comps != nil {
		return [][]value.Value{comps}
	}
	return nil
}

func composeGrid(s *property.Shorthand, vals []value.Value, optimize bool) [][]value.Value {
	flow := vals[gridAutoFlow].Split(value.Space)
	initialAuto := isInitial(s, vals, "grid-auto-rows") && isInitial(s, vals, "grid-auto-columns")
	if initialAuto && isInitial(s, vals, "grid-auto-flow") {
		return composeGridTemplate(s, vals, optimize)
	} else if !vals[gridTemplateAreas].Is("none") || 2 < len(flow) {
		return nil
	}

	autoFlow := []value.Value{value.NewKeyword("auto-flow")}
	if len(flow) == 2 {
		if !flow[1].Is("dense") {
			return nil
		}
		autoFlow = append(autoFlow, flow[1])
	}
	slash := value.Value{Kind: value.Operator, Text: "/"}
	if flow[0].Is("row") && vals[gridTemplateRows].Is("none") && isInitial(s, vals, "grid-auto-columns") {
		comps := autoFlow
		if !optimize || !vals[gridAutoRows].Is("auto") {
			comps = append(comps, vals[gridAutoRows].Components()...)
		}
		comps = append(comps, slash)
		return [][]value.Value{append(comps, vals[gridTemplateColumns].Components()...)}
	} else if flow[0].Is("column") && vals[gridTemplateColumns].Is("none") && isInitial(s, vals, "grid-auto-rows") {
		comps := append(vals[gridTemplateRows].Components(), slash)
		comps = append(comps, autoFlow...)
		if !optimize || !vals[gridAutoColumns].Is("auto") {
			comps = append(comps, vals[gridAutoColumns].Components()...)
		}
		return [][]value.Value{comps}
	}
	return nil
}
