package ui

import (
	"fmt"
	"net/http"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/nav"
	"github.com/lvo-app/site/seo"
)

// ---- Layout Components ----

func container(children ...g.Node) g.Node {
	return Div(
		Class("container mx-auto px-6 relative z-10"),
		g.Group(children),
	)
}

// contentContainer is the narrow column used by informational pages.
func contentContainer(children ...g.Node) g.Node {
	return Div(
		Class("min-h-screen pt-32 pb-20 container mx-auto px-6 max-w-4xl"),
		g.Group(children),
	)
}

// reveal marks an element for the scroll-in animation. kind selects the
// starting transform in site.css; index staggers siblings by 100ms.
func reveal(kind string, index int) g.Node {
	return g.Group{
		g.Attr("data-reveal", kind),
		g.If(index > 0, Style(fmt.Sprintf("transition-delay: %dms", index*100))),
	}
}

func gradientText(text, gradient string) g.Node {
	return Span(
		Class("bg-gradient-to-r "+gradient+" bg-clip-text text-transparent"),
		g.Text(text),
	)
}

// badge is the small rounded label above section headings.
func badge(text string, tinted bool) g.Node {
	frame := "bg-white/5 border border-white/10 backdrop-blur-sm"
	if tinted {
		frame = "bg-primary/10 border border-primary/20"
	}
	return Div(
		Class("inline-block px-4 py-2 rounded-full mb-6 "+frame),
		Span(Class("text-primary font-semibold text-sm tracking-wide uppercase"), g.Text(text)),
	)
}

// sectionHeading renders a centred heading block for a home page section.
func sectionHeading(sc content.SectionCopy, gradient bool) g.Node {
	titleClass := "text-3xl md:text-4xl font-bold mb-4"
	if gradient {
		titleClass += " bg-gradient-to-r from-primary to-secondary bg-clip-text text-transparent inline-block"
	}
	return Div(
		Class("text-center mb-16"),
		reveal("up", 0),
		g.If(sc.Badge != "", badge(sc.Badge, true)),
		H2(Class(titleClass), g.Text(sc.Title)),
		g.If(sc.Subtitle != "", P(Class("text-gray-400 max-w-2xl mx-auto"), g.Text(sc.Subtitle))),
	)
}

// backLink returns to the home page from an informational page.
func backLink(label string) g.Node {
	return A(
		Href(nav.HomePath),
		Class("inline-flex items-center gap-2 text-gray-400 hover:text-primary transition-colors mb-8 group"),
		icon("arrow-left", 20, "group-hover:-translate-x-1 transition-transform"),
		Span(g.Text(label)),
	)
}

func mailLink(class string) g.Node {
	return A(Href(content.Site.Mailto()), Class(class), g.Text(content.Site.ContactEmail))
}

// ---- Error Page ----

// ErrorPage renders an HTTP error inside the site shell.
func ErrorPage(code int, message string, s State) g.Node {
	title := fmt.Sprintf("%d – %s", code, content.Site.Name)
	heading := http.StatusText(code)
	if heading == "" {
		heading = "Error"
	}
	if code == http.StatusNotFound {
		message = "Halaman yang Anda cari tidak ditemukan."
	}
	meta := seo.Meta{Title: title, Lang: "id"}
	return Page(meta, s, []g.Node{
		contentContainer(
			Div(
				Class("text-center py-20"),
				P(Class("text-primary font-bold text-6xl mb-6"), g.Textf("%d", code)),
				H1(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text(heading)),
				g.If(message != "", P(Class("text-gray-400 mb-10"), g.Text(message))),
				buttonPrimary("Kembali ke Beranda", withHref(nav.HomePath)),
			),
		),
	})
}
