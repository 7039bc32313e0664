package shorthand

import (
	"github.com/tdewolff/cssom/property"
	"github.com/tdewolff/cssom/value"
)

const (
	animDuration = iota
	animTimingFunction
	animDelay
	animIterationCount
	animDirection
	animFillMode
	animPlayState
	animName
)

// parseAnimationLayer assigns keywords to the first longhand that accepts them and is not yet set, a keyword left over is the animation name.
func parseAnimationLayer(s *property.Shorthand, comps []value.Value, last bool) (layer, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	}
	l := layer{}
	for _, comp := range comps {
		if value.IsTime(comp) && !l.has(animDuration) {
			l[animDuration] = comp
		} else if value.IsTime(comp) && !l.has(animDelay) {
			l[animDelay] = comp
		} else if value.IsTimingFunction(comp) && !l.has(animTimingFunction) {
			l[animTimingFunction] = comp
		} else if (comp.Kind == value.Number && value.IsNonNegative(comp) || comp.Is("infinite")) && !l.has(animIterationCount) {
			l[animIterationCount] = comp
		} else if value.IsKeyword(comp, "normal", "reverse", "alternate", "alternate-reverse") && !l.has(animDirection) {
			l[animDirection] = comp
		} else if value.IsKeyword(comp, "none", "forwards", "backwards", "both") && !l.has(animFillMode) {
			l[animFillMode] = comp
		} else if value.IsKeyword(comp, "running", "paused") && !l.has(animPlayState) {
			l[animPlayState] = comp
		} else if (value.IsIdent(comp) || value.IsString(comp)) && !l.has(animName) {
			l[animName] = comp
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}
	return l, nil
}

func composeAnimationLayer(s *property.Shorthand, l layer, last, full bool) []value.Value {
	comps := []value.Value{}
	comps = emit(comps, s, l, animDuration, full || !l[animDelay].Equal(s.Initial[animDelay]))
	comps = emit(comps, s, l, animTimingFunction, full)
	comps = emit(comps, s, l, animDelay, full)
	comps = emit(comps, s, l, animIterationCount, full)
	comps = emit(comps, s, l, animDirection, full)
	comps = emit(comps, s, l, animFillMode, full)
	comps = emit(comps, s, l, animPlayState, full)
	comps = emit(comps, s, l, animName, full)
	if len(comps) == 0 {
		comps = append(comps, l[animName])
	}
	return comps
}

const (
	transProperty = iota
	transDuration
	transTimingFunction
	transDelay
)

func parseTransitionLayer(s *property.Shorthand, comps []value.Value, last bool) (layer, error) {
	if err := expectSingle(comps); err != nil {
		return nil, err
	}
	l := layer{}
	for _, comp := range comps {
		if value.IsTime(comp) && !l.has(transDuration) {
			l[transDuration] = comp
		} else if value.IsTime(comp) && !l.has(transDelay) {
			l[transDelay] = comp
		} else if value.IsTimingFunction(comp) && !l.has(transTimingFunction) {
			l[transTimingFunction] = comp
		} else if value.IsIdent(comp) && !l.has(transProperty) {
			l[transProperty] = comp
		} else {
			return nil, syntaxError("invalid or duplicate value %s", comp.String())
		}
	}
	return l, nil
}

func composeTransitionLayer(s *property.Shorthand, l layer, last, full bool) []value.Value {
	comps := []value.Value{}
	comps = emit(comps, s, l, transProperty, full)
	comps = emit(comps, s, l, transDuration, full || !l[transDelay].Equal(s.Initial[transDelay]))
	comps = emit(comps, s, l, transTimingFunction, full)
	comps = emit(comps, s, l, transDelay, full)
	if len(comps) == 0 {
		comps = append(comps, l[transProperty])
	}
	return comps
}
