package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/nav"
)

const footerLinkClass = "text-gray-400 hover:text-primary transition-colors hover:translate-x-1 inline-block"

func footerHeading(text string) g.Node {
	return H4(Class("mb-6 text-lg font-semibold tracking-wide uppercase"), g.Text(text))
}

func footerBrand() g.Node {
	return Div(
		H2(
			Class("text-3xl font-bold mb-6 bg-gradient-to-r from-primary to-secondary bg-clip-text text-transparent inline-block"),
			g.Text(content.Site.Name),
		),
		P(Class("text-gray-400 mb-8 leading-relaxed max-w-sm"), g.Text(content.Site.Blurb)),
		Div(
			Class("flex gap-4"),
			g.Map(content.Site.Socials, func(s content.Social) g.Node {
				return A(
					Href(s.URL),
					g.Attr("aria-label", s.Label),
					hx.Boost("false"),
					Class("h-10 w-10 flex items-center justify-center rounded-full bg-white/5 hover:bg-primary/20 hover:text-primary transition-all hover:-translate-y-1"),
					icon(s.Icon, 20),
				)
			}),
		),
	)
}

func footerNav(currentPath string) g.Node {
	return Div(
		footerHeading("Navigasi"),
		Ul(
			Class("space-y-4"),
			g.Map(nav.Footer, func(item nav.Item) g.Node {
				return Li(navLink(item, currentPath, footerLinkClass))
			}),
			Li(A(Href(content.Site.PlayStoreURL), hx.Boost("false"), Class(footerLinkClass), g.Text("Download"))),
		),
	)
}

func footerLegal(pages []*content.LegalPage, currentPath string) g.Node {
	return Div(
		footerHeading("Legal"),
		Ul(
			Class("space-y-4"),
			g.Map(pages, func(p *content.LegalPage) g.Node {
				return Li(A(
					Href(p.Path),
					Class("text-gray-400 hover:text-primary transition-colors aria-[current=page]:text-primary"),
					g.If(nav.Active(p.Path, currentPath), g.Attr("aria-current", "page")),
					g.Text(p.NavLabel),
				))
			}),
		),
	)
}

func footerContact() g.Node {
	return Div(
		footerHeading("Hubungi Kami"),
		Div(
			Class("flex items-center gap-3 text-gray-400 mb-4"),
			icon("mail", 20, "text-primary"),
			mailLink("hover:text-primary transition-colors"),
		),
		P(Class("text-gray-500 text-sm"), g.Text(content.Site.Location)),
	)
}

func footer(s State) g.Node {
	return Footer(
		Class("relative bg-gradient-to-t from-[#0a0a0a] to-black text-white pt-24 pb-10 overflow-hidden border-t border-white/5"),
		Div(Class("absolute bottom-0 left-[20%] w-[60%] h-[300px] bg-[radial-gradient(ellipse_at_bottom,rgba(139,92,246,0.1),transparent_70%)] pointer-events-none")),
		container(
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-[1.5fr_1fr_1fr_1fr] gap-12 mb-20"),
				footerBrand(),
				footerNav(s.Path),
				footerLegal(s.Legal, s.Path),
				footerContact(),
			),
			Div(
				Class("border-t border-white/5 pt-10 text-center text-gray-500 text-sm"),
				P(g.Textf("© %d %s. All rights reserved.", s.Now.Year(), content.Site.Developer)),
			),
		),
	)
}
