package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/seo"
)

var titleStyles = map[string]string{
	"gradient-white":  "bg-gradient-to-r from-white to-gray-500 bg-clip-text text-transparent",
	"gradient-brand":  "bg-gradient-to-r from-primary to-secondary bg-clip-text text-transparent",
	"gradient-danger": "bg-gradient-to-r from-red-500 to-orange-500 bg-clip-text text-transparent",
}

// LegalPage renders an informational page in its configured layout.
func LegalPage(p *content.LegalPage, s State) g.Node {
	meta := seo.New(s.BaseURL, p.Path, p.DocumentTitle(), p.SEO.Description, p.Lang)
	meta.JSONLD = []map[string]any{
		seo.WebPage(p.DocumentTitle(), meta.Canonical, p.SEO.Description, p.Lang),
	}

	var body g.Node
	switch p.Layout {
	case content.LayoutProse:
		body = proseSections(p.Sections)
	case content.LayoutGrid:
		body = gridSections(p.Sections)
	default:
		body = listSections(p.Sections)
	}

	return Page(meta, s, []g.Node{
		contentContainer(
			legalHeader(p, s),
			body,
			g.Iff(p.Callout != nil, func() g.Node { return callout(p.Callout) }),
		),
	})
}

func legalHeader(p *content.LegalPage, s State) g.Node {
	centred := p.Layout != content.LayoutList
	headerClass := "mb-12"
	switch p.Layout {
	case content.LayoutProse:
		headerClass = "text-center mb-16"
	case content.LayoutGrid:
		headerClass = "text-center mb-12"
	}

	titleClass := "text-4xl font-bold mb-4"
	switch {
	case p.Layout == content.LayoutProse:
		titleClass += " md:text-5xl"
	case p.Layout == content.LayoutGrid || p.TitleStyle == "gradient-danger":
		titleClass += " md:text-6xl"
	default:
		titleClass += " md:text-5xl"
	}
	if style, ok := titleStyles[p.TitleStyle]; ok {
		titleClass += " " + style
	}

	return Div(
		Class(headerClass),
		g.If(p.BackLabel != "", backLink(p.BackLabel)),
		H1(Class(titleClass), g.Text(p.Title)),
		g.If(p.Subtitle != "", P(Class("text-xl text-gray-400 max-w-2xl"+iff(centred, " mx-auto", "")), g.Text(p.Subtitle))),
		g.Iff(p.UpdatedLabel != "", func() g.Node { return updatedLine(p, s) }),
	)
}

func updatedLine(p *content.LegalPage, s State) g.Node {
	t, ok := p.UpdatedOn(s.Now)
	if !ok {
		return nil
	}
	return P(
		Class("text-gray-400"),
		g.Text(p.UpdatedLabel+" "),
		g.El("time", g.Attr("datetime", t.Format("2006-01-02")), g.Text(content.FormatDate(t, p.Lang))),
	)
}

// sectionBody is Markdown already rendered and sanitised at load time.
func sectionBody(s content.LegalSection, class string) g.Node {
	return Div(Class("legal-body "+class), g.Raw(s.BodyHTML))
}

func proseSections(sections []content.LegalSection) g.Node {
	return Div(
		Class("space-y-12 text-gray-300 leading-relaxed"),
		g.Map(sections, func(s content.LegalSection) g.Node {
			return Section(
				Class("bg-white/5 p-8 rounded-2xl border border-white/5"),
				H2(Class("text-2xl font-bold text-white mb-4 pb-4 border-b border-white/10"), g.Text(s.Title)),
				sectionBody(s, ""),
			)
		}),
	)
}

func listSections(sections []content.LegalSection) g.Node {
	return Div(
		Class("space-y-8"),
		g.Group(indexed(sections, func(i int, s content.LegalSection) g.Node {
			return Section(
				Class("bg-dark-surface p-8 rounded-3xl border border-white/5 hover:border-primary/20 transition-all hover:-translate-y-1"),
				reveal("up", i),
				Div(
					Class("flex items-center gap-4 mb-4"),
					g.If(s.Icon != "", iconTile(s.Icon, 20, "w-10 h-10 rounded-xl bg-primary/10 shrink-0")),
					H2(Class("text-xl font-bold text-white"), g.Text(s.Title)),
				),
				sectionBody(s, "text-gray-300 leading-relaxed"+iff(s.Icon != "", " md:pl-[3.5rem]", "")),
			)
		})),
	)
}

func gridSections(sections []content.LegalSection) g.Node {
	return Div(
		Class("grid gap-6 md:grid-cols-2"),
		g.Group(indexed(sections, func(i int, s content.LegalSection) g.Node {
			return Div(
				Class("bg-dark-surface p-8 rounded-3xl border border-white/5 hover:border-primary/20 transition-all hover:-translate-y-1"),
				reveal("up", i),
				g.If(s.Icon != "", iconTile(s.Icon, 24, "w-12 h-12 rounded-2xl bg-primary/10 mb-6")),
				H3(Class("text-xl font-bold text-white mb-3"), g.Text(s.Title)),
				sectionBody(s, "text-gray-400 leading-relaxed"),
			)
		})),
	)
}

func callout(c *content.Callout) g.Node {
	return Div(
		Class("mt-16 p-8 rounded-3xl bg-gradient-to-r from-primary/10 to-secondary/10 border border-primary/20 text-center"),
		reveal("up", 0),
		H3(Class("text-2xl font-bold text-white mb-4"), g.Text(c.Title)),
		P(Class("text-gray-300 mb-6 max-w-2xl mx-auto"), g.Text(c.Body)),
		g.If(c.ButtonURL != "", A(
			Href(c.ButtonURL),
			hx.Boost("false"),
			Class("inline-block px-8 py-3 bg-primary text-white rounded-full font-bold hover:bg-primary/80 transition-colors"),
			g.Text(c.ButtonLabel),
		)),
	)
}

func iff(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
