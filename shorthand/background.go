package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

const (
	bgImage = iota
	bgPosition
	bgSize
	bgRepeat
	bgAttachment
	bgOrigin
	bgClip
	bgColor
)

var backgroundBoxes = []string{"border-box", "padding-box", "content-box"}

func parseBackgroundLayer(s *property.Shorthand, comps []value.Value, last bool) (layer, error) {
	l := layer{}
	boxes := []value.Value{}
	for i := 0; i < len(comps); {
		comp := comps[i]
		if value.IsColor(comp) && !l.has(bgColor) {
			if !last {
				return nil, conflictError("background color only allowed in the final layer")
			}
			l[bgColor] = comp
			i++
		} else if (value.IsImage(comp) || comp.Is("none")) && !l.has(bgImage) {
			l[bgImage] = comp
			i++
		} else if isPositionToken(comp) && !l.has(bgPosition) {
			n, err := parsePositionSize(comps[i:], l, bgPosition, bgSize)
			if err != nil {
				return nil, err
			}
			i += n
		} else if n := repeatLength(comps[i:]); 0 < n && !l.has(bgRepeat) {
			l[bgRepeat] = value.NewList(value.Space, comps[i:i+n]...)
			i += n
		} else if value.IsKeyword(comp, "scroll", "fixed", "local") && !l.has(bgAttachment) {
			l[bgAttachment] = comp
			i++
		} else if value.IsKeyword(comp, backgroundBoxes...) && len(boxes) < 2 && !l.has(bgClip) {
			boxes = append(boxes, comp)
			i++
		} else if comp.Is("text") && !l.has(bgClip) && len(boxes) < 2 {
			l[bgClip] = comp
			i++
		} else if comp.IsOperator("/") {
			return nil, syntaxError("size without position")
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}

	if len(boxes) == 1 {
		l[bgOrigin] = boxes[0]
		if !l.has(bgClip) {
			l[bgClip] = boxes[0]
		}
	} else if len(boxes) == 2 {
		l[bgOrigin], l[bgClip] = boxes[0], boxes[1]
	}
	return l, nil
}

func composeBackgroundLayer(s *property.Shorthand, l layer, last, full bool) []value.Value {
	comps := []value.Value{}
	comps = emit(comps, s, l, bgImage, full)
	comps = composePositionSize(comps, s, l, bgPosition, bgSize, full)
	comps = emit(comps, s, l, bgRepeat, full)
	comps = emit(comps, s, l, bgAttachment, full)
	comps = composeBoxes(comps, s, l, bgOrigin, bgClip, full)
	if last {
		comps = emit(comps, s, l, bgColor, full)
	}
	if len(comps) == 0 {
		comps = append(comps, l[bgImage])
	}
	return comps
}

// composeBoxes emits origin and clip, a single box stands for both.
func composeBoxes(comps []value.Value, s *property.Shorthand, l layer, origin, clip int, full bool) []value.Value {
	initialOrigin := l[origin].Equal(s.Initial[origin])
	if l[origin].Equal(l[clip]) {
		if full || !initialOrigin || !l[clip].Equal(s.Initial[clip]) {
			comps = append(comps, l[origin])
		}
	} else if value.IsKeyword(l[clip], "text", "no-clip") && (initialOrigin && !full) {
		comps = append(comps, l[clip])
	} else if full || !initialOrigin || !l[clip].Equal(s.Initial[clip]) {
		comps = append(comps, l[origin], l[clip])
	}
	return comps
}

const (
	maskImage = iota
	maskMode
	maskPosition
	maskSize
	maskRepeat
	maskOrigin
	maskClip
	maskComposite
)

var maskBoxes = []string{"border-box", "padding-box", "content-box", "fill-box", "stroke-box", "view-box"}

func parseMaskLayer(s *property.Shorthand, comps []value.Value, last bool) (layer, error) {
	l := layer{}
	boxes := []value.Value{}
	for i := 0; i < len(comps); {
		comp := comps[i]
		if (value.IsImage(comp) || comp.Is("none")) && !l.has(maskImage) {
			l[maskImage] = comp
			i++
		} else if value.IsKeyword(comp, "alpha", "luminance", "match-source") && !l.has(maskMode) {
			l[maskMode] = comp
			i++
		} else if isPositionToken(comp) && !l.has(maskPosition) {
			n, err := parsePositionSize(comps[i:], l, maskPosition, maskSize)
			if err != nil {
				return nil, err
			}
			i += n
		} else if n := repeatLength(comps[i:]); 0 < n && !l.has(maskRepeat) {
			l[maskRepeat] = value.NewList(value.Space, comps[i:i+n]...)
			i += n
		} else if value.IsKeyword(comp, maskBoxes...) && len(boxes) < 2 && !l.has(maskClip) {
			boxes = append(boxes, comp)
			i++
		} else if comp.Is("no-clip") && !l.has(maskClip) && len(boxes) < 2 {
			l[maskClip] = comp
			i++
		} else if value.IsKeyword(comp, "add", "subtract", "intersect", "exclude") && !l.has(maskComposite) {
			l[maskComposite] = comp
			i++
		} else if comp.IsOperator("/") {
			return nil, syntaxError("size without position")
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}

	if len(boxes) == 1 {
		l[maskOrigin] = boxes[0]
		if !l.has(maskClip) {
			l[maskClip] = boxes[0]
		}
	} else if len(boxes) == 2 {
		l[maskOrigin], l[maskClip] = boxes[0], boxes[1]
	}
	return l, nil
}

func composeMaskLayer(s *property.Shorthand, l layer, last, full bool) []value.Value {
	comps := []value.Value{}
	comps = emit(comps, s, l, maskImage, full)
	comps = emit(comps, s, l, maskMode, full)
	comps = composePositionSize(comps, s, l, maskPosition, maskSize, full)
	comps = emit(comps, s, l, maskRepeat, full)
	comps = composeBoxes(comps, s, l, maskOrigin, maskClip, full)
	comps = emit(comps, s, l, maskComposite, full)
	if len(comps) == 0 {
		comps = append(comps, l[maskImage])
	}
	return comps
}
