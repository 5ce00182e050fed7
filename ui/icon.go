package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

// icon renders a placeholder the Lucide script replaces with the named SVG.
// The placeholder keeps its classes, so size and colour are set here.
func icon(name string, size int, classes ...string) g.Node {
	class := iconSize(size)
	for _, c := range classes {
		class += " " + c
	}
	return g.El("i",
		g.Attr("data-lucide", name),
		Class(class),
		g.Attr("aria-hidden", "true"),
	)
}

func iconSize(size int) string {
	switch {
	case size <= 16:
		return "w-4 h-4"
	case size <= 20:
		return "w-5 h-5"
	case size <= 24:
		return "w-6 h-6"
	case size <= 28:
		return "w-7 h-7"
	default:
		return "w-8 h-8"
	}
}

// iconTile is an icon centred in a tinted rounded square.
func iconTile(name string, size int, tileClass string) g.Node {
	return Div(
		Class("flex items-center justify-center text-primary "+tileClass),
		icon(name, size),
	)
}
