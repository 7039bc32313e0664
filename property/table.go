package property

var sides = [4]string{"top", "right", "bottom", "left"}

func init() {
	s := define("margin", Edge, "margin-top", "0", "margin-right", "0", "margin-bottom", "0", "margin-left", "0")
	s.AllowWideToken = true
	s = define("padding", Edge, "padding-top", "0", "padding-right", "0", "padding-bottom", "0", "padding-left", "0")
	s.AllowWideToken = true
	s = define("inset", Edge, "top", "auto", "right", "auto", "bottom", "auto", "left", "auto")
	s.AllowWideToken = true
	define("border-width", Edge, "border-top-width", "medium", "border-right-width", "medium", "border-bottom-width", "medium", "border-left-width", "medium")
	define("border-style", Edge, "border-top-style", "none", "border-right-style", "none", "border-bottom-style", "none", "border-left-style", "none")
	define("border-color", Edge, "border-top-color", "currentcolor", "border-right-color", "currentcolor", "border-bottom-color", "currentcolor", "border-left-color", "currentcolor")

	define("margin-inline", Logical, "margin-inline-start", "0", "margin-inline-end", "0")
	define("margin-block", Logical, "margin-block-start", "0", "margin-block-end", "0")
	define("padding-inline", Logical, "padding-inline-start", "0", "padding-inline-end", "0")
	define("padding-block", Logical, "padding-block-start", "0", "padding-block-end", "0")
	define("inset-inline", Logical, "inset-inline-start", "auto", "inset-inline-end", "auto")
	define("inset-block", Logical, "inset-block-start", "auto", "inset-block-end", "auto")

	pairs := []string{}
	for _, side := range sides {
		define("border-"+side, Side, "border-"+side+"-width", "medium", "border-"+side+"-style", "none", "border-"+side+"-color", "currentcolor")
	}
	for _, kind := range []string{"width", "style", "color"} {
		initial := map[string]string{"width": "medium", "style": "none", "color": "currentcolor"}[kind]
		for _, side := range sides {
			pairs = append(pairs, "border-"+side+"-"+kind, initial)
		}
	}
	pairs = append(pairs,
		"border-image-source", "none",
		"border-image-slice", "100%",
		"border-image-width", "1",
		"border-image-outset", "0",
		"border-image-repeat", "stretch",
	)
	s = define("border", Border, pairs...)
	s.Assigned = 12
	define("outline", Side, "outline-width", "medium", "outline-style", "none", "outline-color", "currentcolor")
	define("column-rule", Side, "column-rule-width", "medium", "column-rule-style", "none", "column-rule-color", "currentcolor")

	define("border-radius", Composite, "border-top-left-radius", "0", "border-top-right-radius", "0", "border-bottom-right-radius", "0", "border-bottom-left-radius", "0")
	define("border-image", Composite, "border-image-source", "none", "border-image-slice", "100%", "border-image-width", "1", "border-image-outset", "0", "border-image-repeat", "stretch")
	define("list-style", Composite, "list-style-type", "disc", "list-style-position", "outside", "list-style-image", "none")
	define("text-decoration", Composite, "text-decoration-line", "none", "text-decoration-style", "solid", "text-decoration-color", "currentcolor")
	define("flex", Composite, "flex-grow", "0", "flex-shrink", "1", "flex-basis", "auto")
	define("flex-flow", Composite, "flex-direction", "row", "flex-wrap", "nowrap")
	define("columns", Composite, "column-width", "auto", "column-count", "auto")

	define("gap", Pair, "row-gap", "normal", "column-gap", "normal")
	define("overflow", Pair, "overflow-x", "visible", "overflow-y", "visible")
	define("place-content", Pair, "align-content", "normal", "justify-content", "normal")
	define("place-items", Pair, "align-items", "normal", "justify-items", "legacy")
	define("place-self", Pair, "align-self", "auto", "justify-self", "auto")

	define("background", Layered,
		"background-image", "none",
		"background-position", "0% 0%",
		"background-size", "auto",
		"background-repeat", "repeat",
		"background-attachment", "scroll",
		"background-origin", "padding-box",
		"background-clip", "border-box",
		"background-color", "transparent",
	)
	define("mask", Layered,
		"mask-image", "none",
		"mask-mode", "match-source",
		"mask-position", "0% 0%",
		"mask-size", "auto",
		"mask-repeat", "repeat",
		"mask-origin", "border-box",
		"mask-clip", "border-box",
		"mask-composite", "add",
	)
	define("animation", Layered,
		"animation-duration", "0s",
		"animation-timing-function", "ease",
		"animation-delay", "0s",
		"animation-iteration-count", "1",
		"animation-direction", "normal",
		"animation-fill-mode", "none",
		"animation-play-state", "running",
		"animation-name", "none",
	)
	define("transition", Layered,
		"transition-property", "all",
		"transition-duration", "0s",
		"transition-timing-function", "ease",
		"transition-delay", "0s",
	)

	s = define("font", Font,
		"font-style", "normal",
		"font-variant-caps", "normal",
		"font-weight", "normal",
		"font-stretch", "normal",
		"font-size", "medium",
		"line-height", "normal",
		"font-family", "",
		"font-variant-ligatures", "normal",
		"font-variant-position", "normal",
		"font-variant-numeric", "normal",
		"font-variant-alternates", "normal",
		"font-variant-east-asian", "normal",
		"font-size-adjust", "none",
		"font-kerning", "auto",
		"font-optical-sizing", "auto",
		"font-feature-settings", "normal",
		"font-variation-settings", "normal",
	)
	s.Assigned = 7
	define("font-variant", FontVariant,
		"font-variant-caps", "normal",
		"font-variant-ligatures", "normal",
		"font-variant-position", "normal",
		"font-variant-numeric", "normal",
		"font-variant-alternates", "normal",
		"font-variant-east-asian", "normal",
	)

	define("grid-template", GridTemplate, "grid-template-rows", "none", "grid-template-columns", "none", "grid-template-areas", "none")
	define("grid", Grid,
		"grid-template-rows", "none",
		"grid-template-columns", "none",
		"grid-template-areas", "none",
		"grid-auto-rows", "auto",
		"grid-auto-columns", "auto",
		"grid-auto-flow", "row",
	)
	define("grid-area", GridRange, "grid-row-start", "auto", "grid-column-start", "auto", "grid-row-end", "auto", "grid-column-end", "auto")
	define("grid-row", GridRange, "grid-row-start", "auto", "grid-row-end", "auto")
	define("grid-column", GridRange, "grid-column-start", "auto", "grid-column-end", "auto")
}
