package ui

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/lvo-app/site/config"
	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/seo"
)

// State is the per-request information every page needs to render the shell.
type State struct {
	Path     string
	MenuOpen bool
	Now      time.Time
	BaseURL  string
	Legal    []*content.LegalPage
}

// ---- Page Layout ----

// Page wraps content in the document shell: head metadata, fixed navbar and footer.
func Page(meta seo.Meta, s State, children []g.Node) g.Node {
	lang := meta.Lang
	if lang == "" {
		lang = "id"
	}
	return components.HTML5(components.HTML5Props{
		Title:       meta.Title,
		Description: meta.Description,
		Language:    lang,
		Head:        head(meta),
		Body: []g.Node{
			Div(
				ID("app"),
				Class("min-h-screen bg-black text-white font-sans antialiased selection:bg-primary/30 selection:text-white"),
				// Boosted navigation swaps the body and resets scroll to the top.
				hx.Boost("true"),
				hx.Swap("innerHTML show:window:top"),
				navbar(s),
				Main(Class("relative z-0"), g.Group(children)),
				footer(s),
			),
		},
	})
}

func head(meta seo.Meta) []g.Node {
	nodes := []g.Node{
		Meta(Name("theme-color"), Content("#000000")),
		Link(Rel("icon"), Type("image/png"), Href("/assets/img/lvo_logo_square.png")),
		g.If(meta.Canonical != "", Link(Rel("canonical"), Href(meta.Canonical))),
		openGraph(meta),
		Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
		Link(Rel("stylesheet"), Href(config.FontURL)),
		Script(Src(config.TailwindURL)),
		Script(g.Raw(tailwindConfig())),
		Link(Rel("stylesheet"), Href("/css/site.css")),
		g.El("noscript", g.El("style", g.Raw("[data-reveal]{opacity:1!important;transform:none!important}"))),
		Script(Src(config.HTMXURL), Defer()),
		Script(Src(config.LucideURL), Defer()),
		Script(Src("/js/site.js"), Defer()),
	}
	for _, doc := range meta.JSONLD {
		nodes = append(nodes, Script(Type("application/ld+json"), g.Raw(seo.JSON(doc))))
	}
	return nodes
}

func openGraph(meta seo.Meta) g.Node {
	property := func(name, value string) g.Node {
		return g.If(value != "", Meta(g.Attr("property", name), Content(value)))
	}
	named := func(name, value string) g.Node {
		return g.If(value != "", Meta(Name(name), Content(value)))
	}
	return g.Group{
		property("og:title", meta.OG.Title),
		property("og:description", meta.OG.Description),
		property("og:type", meta.OG.Type),
		property("og:url", meta.OG.URL),
		property("og:image", meta.OG.Image),
		property("og:locale", meta.OG.Locale),
		property("og:site_name", content.Site.Name),
		named("twitter:card", meta.Twitter.Card),
		named("twitter:image", meta.Twitter.Image),
	}
}

func tailwindConfig() string {
	return fmt.Sprintf(`tailwind.config={theme:{extend:{fontFamily:{sans:['Inter','sans-serif']},`+
		`colors:{primary:{DEFAULT:'%s',dark:'%s'},secondary:'%s',dark:{DEFAULT:'#000000',surface:'%s'}}}}}`,
		config.ColorPrimary, config.ColorPrimaryDark, config.ColorSecondary, config.ColorSurface)
}
