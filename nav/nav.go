package nav

import (
	"path"
	"strings"
)

const HomePath = "/"

// ScrollThreshold is the vertical offset in pixels past which the header
// switches to its compact style.
const ScrollThreshold = 50

// MenuPartialPath serves the mobile menu fragment.
const MenuPartialPath = "/partials/mobile-menu"

// Item is a navigation entry pointing at a home page section. Route, when set,
// is used instead of the section anchor on pages other than home.
type Item struct {
	Label  string
	Anchor string
	Route  string
}

// Main is the navbar definition, in display order.
var Main = []Item{
	{Label: "Beranda", Anchor: "home"},
	{Label: "Fitur", Anchor: "fitur"},
	{Label: "Tentang", Anchor: "tentang"},
	{Label: "Privasi", Anchor: "privasi", Route: "/privacy-policy"},
}

// Footer lists the section links shown in the footer navigation column.
var Footer = Main[:3]

// Routes are the page paths the site serves, home first.
var Routes = []string{
	HomePath,
	"/privacy-policy",
	"/terms",
	"/community-guidelines",
	"/delete-account",
}

// Href returns where item links to when rendered on currentPath: the in-page
// anchor on home, otherwise the dedicated route or the anchor on home.
func Href(item Item, currentPath string) string {
	if Clean(currentPath) == HomePath {
		return "#" + item.Anchor
	}
	if item.Route != "" {
		return item.Route
	}
	return HomePath + "#" + item.Anchor
}

// IsAnchor reports whether href scrolls within the current page.
func IsAnchor(href string) bool {
	return strings.HasPrefix(href, "#")
}

// Clean normalises a request path: no trailing slash, no dot segments, and
// "/" for empty input.
func Clean(p string) string {
	if p == "" {
		return HomePath
	}
	p = path.Clean("/" + p)
	return p
}

// Active reports whether a link to itemPath is the current page. Routing is
// case-insensitive, so the comparison is too.
func Active(itemPath, currentPath string) bool {
	return strings.EqualFold(Clean(itemPath), Clean(currentPath))
}

// ---- Header scroll state ----

const (
	headerBase     = "fixed top-0 w-full z-50 transition-all duration-300"
	headerScrolled = "h-20 bg-black/85 shadow-lg backdrop-blur-md"
	headerTop      = "h-[90px] bg-black/60 backdrop-blur-md border-b border-white/10"
)

// Scrolled reports whether a page scrolled to y shows the compact header.
func Scrolled(y float64) bool {
	return y > ScrollThreshold
}

// HeaderClass returns the header classes for the given scroll state.
func HeaderClass(scrolled bool) string {
	return headerBase + " " + HeaderStateClass(scrolled)
}

// HeaderStateClass returns only the classes that differ between states.
func HeaderStateClass(scrolled bool) string {
	if scrolled {
		return headerScrolled
	}
	return headerTop
}

// ---- Mobile menu ----

// Menu is the mobile menu state for a page.
type Menu struct {
	Open bool
	Path string
}

// NewMenu returns the menu state for the page at p.
func NewMenu(open bool, p string) Menu {
	return Menu{Open: open, Path: Clean(p)}
}

// ParseMenuPartial reads a fragment URL's state segment and the page path
// that follows it. Only "open" and "closed" are valid states.
func ParseMenuPartial(state, rest string) (Menu, bool) {
	switch state {
	case "open", "closed":
		return NewMenu(state == "open", "/"+rest), true
	default:
		return Menu{}, false
	}
}

func (m Menu) Toggled() Menu {
	return Menu{Open: !m.Open, Path: m.Path}
}

// Closed returns the menu with the same path, closed.
func (m Menu) Closed() Menu {
	return Menu{Path: m.Path}
}

// PartialURL is the fragment URL that renders m:
// /partials/mobile-menu/{open|closed}<path>, with no trailing path for home.
// Everything is in the path so the fragments can be served as static files.
func (m Menu) PartialURL() string {
	u := MenuPartialPath + "/" + MenuParam(m.Open)
	if m.Path != HomePath {
		u += m.Path
	}
	return u
}

// MenuPartialURLs lists the fragment URLs for both menu states on each path.
func MenuPartialURLs(paths []string) []string {
	urls := make([]string, 0, 2*len(paths))
	for _, p := range paths {
		urls = append(urls, NewMenu(false, p).PartialURL(), NewMenu(true, p).PartialURL())
	}
	return urls
}

// PageURL is the full-page URL that renders m, used when scripts are off.
func (m Menu) PageURL() string {
	return m.Path + "?menu=" + MenuParam(m.Open)
}

// MenuParam is the ?menu= query value for an open state.
func MenuParam(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

// ParseMenuParam reads the ?menu= query value. Anything but "open" is closed.
func ParseMenuParam(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "open")
}
