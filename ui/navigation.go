package ui

import (
	"strconv"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/nav"
)

// navLink renders a nav item for the current page. Links into another page's
// section leave boosted navigation so the browser scrolls to the anchor.
func navLink(item nav.Item, currentPath string, class string, children ...g.Node) g.Node {
	href := nav.Href(item, currentPath)
	return A(
		Href(href),
		Class(class),
		g.If(!nav.IsAnchor(href) && item.Route == "", hx.Boost("false")),
		g.If(item.Route != "" && nav.Active(item.Route, currentPath), g.Attr("aria-current", "page")),
		g.Text(item.Label),
		g.Group(children),
	)
}

func brandLink() g.Node {
	return A(
		Href(nav.HomePath),
		Class("flex items-center gap-3 group"),
		Img(
			Src(content.Site.Logo),
			Alt(content.Site.Name+" Logo"),
			Class("h-10 w-auto rounded-lg shadow-lg group-hover:scale-105 transition-transform"),
		),
		Span(
			Class("text-2xl font-bold tracking-tight"),
			g.Text("LVO "),
			Span(Class("text-primary"), g.Text("App")),
		),
	)
}

func desktopMenu(currentPath string) g.Node {
	return Nav(
		Class("hidden md:flex items-center gap-10"),
		g.Map(nav.Main, func(item nav.Item) g.Node {
			return navLink(item, currentPath,
				"text-gray-300 hover:text-white font-medium transition-colors relative group",
				Span(Class("absolute -bottom-1 left-0 w-0 h-0.5 bg-primary transition-all group-hover:w-full")),
			)
		}),
		downloadButton(content.Site.PlayStoreURL, withClass("!px-6 !py-2.5")),
	)
}

// navbar renders the fixed site header. The scroll script swaps between the
// two class sets in the data attributes when the page crosses the threshold.
func navbar(s State) g.Node {
	return Header(
		ID("site-header"),
		Class(nav.HeaderClass(false)),
		g.Attr("data-scroll-threshold", strconv.Itoa(nav.ScrollThreshold)),
		g.Attr("data-class-top", nav.HeaderStateClass(false)),
		g.Attr("data-class-scrolled", nav.HeaderStateClass(true)),
		Div(
			Class("container mx-auto px-6 h-full flex justify-between items-center"),
			brandLink(),
			desktopMenu(s.Path),
			MobileMenu(nav.NewMenu(s.MenuOpen, s.Path)),
		),
	)
}

const (
	menuPanelBase   = "fixed inset-0 top-[80px] bg-black/95 backdrop-blur-xl z-40 flex flex-col items-center pt-20 gap-8 md:hidden transition-all duration-300"
	menuPanelOpen   = "opacity-100 pointer-events-auto translate-y-0"
	menuPanelClosed = "opacity-0 pointer-events-none -translate-y-5"
)

// MobileMenu renders the menu toggle and its overlay in state m. The toggle
// fetches the opposite state as a fragment and falls back to a full page link.
func MobileMenu(m nav.Menu) g.Node {
	next := m.Toggled()
	label := "Buka menu"
	iconName := "menu"
	panelClass := menuPanelBase + " " + menuPanelClosed
	if m.Open {
		label = "Tutup menu"
		iconName = "x"
		panelClass = menuPanelBase + " " + menuPanelOpen
	}

	return Div(
		ID("mobile-menu"),
		Class("md:hidden"),
		g.Attr("data-menu-state", nav.MenuParam(m.Open)),
		A(
			Href(next.PageURL()),
			hx.Get(next.PartialURL()),
			hx.Target("#mobile-menu"),
			hx.Swap("outerHTML"),
			Class("inline-flex text-white hover:text-primary transition-transform hover:scale-110"),
			g.Attr("role", "button"),
			g.Attr("aria-label", label),
			g.Attr("aria-expanded", strconv.FormatBool(m.Open)),
			g.Attr("aria-controls", "mobile-menu-panel"),
			icon(iconName, 28),
		),
		Div(
			ID("mobile-menu-panel"),
			Class(panelClass),
			g.If(!m.Open, g.Attr("aria-hidden", "true")),
			g.Attr("data-menu-close", m.Closed().PartialURL()),
			g.Map(nav.Main, func(item nav.Item) g.Node {
				return navLink(item, m.Path,
					"text-2xl font-bold text-white hover:text-primary transition-colors",
					g.Attr("data-menu-link", ""),
				)
			}),
			downloadButton(content.Site.PlayStoreURL, withClass("mt-4"), withAttributes(g.Attr("data-menu-link", ""))),
		),
	)
}
