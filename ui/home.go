package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/lvo-app/site/content"
	"github.com/lvo-app/site/nav"
	"github.com/lvo-app/site/seo"
)

// HomePage renders the landing page.
func HomePage(s State) g.Node {
	meta := seo.New(s.BaseURL, nav.HomePath,
		content.Site.Name+" – "+content.Site.Tagline,
		content.HeroCopy.Description, "id")
	meta.JSONLD = []map[string]any{
		seo.Organization(content.Site.Developer, seo.Absolute(s.BaseURL, nav.HomePath),
			seo.Absolute(s.BaseURL, content.Site.Logo), content.Site.ContactEmail),
		seo.MobileApplication(content.Site.Name, content.HeroCopy.Description, content.Site.PlayStoreURL),
	}

	return Page(meta, s, []g.Node{
		heroSection(),
		featuresSection(),
		screenshotsSection(),
		trustSection(),
		aboutSection(),
	})
}

func heroSection() g.Node {
	hero := content.HeroCopy
	return Section(
		ID("home"),
		Class("relative pt-40 pb-20 overflow-hidden"),
		Div(Class("absolute inset-0 bg-[radial-gradient(circle_at_70%_20%,rgba(139,92,246,0.1),transparent_60%)] opacity-60")),
		Div(
			Class("container mx-auto px-6 relative z-10 grid grid-cols-1 lg:grid-cols-2 gap-12 items-center"),
			Div(
				Class("max-w-2xl text-center lg:text-left mx-auto lg:mx-0"),
				reveal("left", 0),
				badge(hero.Badge, false),
				H1(
					Class("text-5xl lg:text-7xl font-bold leading-[1.1] mb-6 tracking-tight"),
					g.Text(hero.Headline), Br(),
					gradientText(hero.Highlight, "from-primary to-secondary"),
				),
				P(Class("text-xl text-gray-400 mb-10 leading-relaxed max-w-lg mx-auto lg:mx-0"), g.Text(hero.Description)),
				Div(
					Class("flex flex-wrap justify-center lg:justify-start gap-4"),
					buttonPrimary(hero.CTALabel,
						withHref(content.Site.PlayStoreURL),
						withExternal(),
						withClass("!px-8 !py-4"),
						withLeading(Img(Src(content.Site.PlayBadgeURL), Alt("Play Store"), Class("h-8"))),
					),
					buttonGhost(hero.MoreLabel, withHref("#tentang")),
				),
			),
			Div(
				Class("relative flex justify-center [perspective:1000px] group"),
				reveal("rise", 2),
				Div(Class("absolute inset-0 bg-primary/20 blur-[100px] rounded-full translate-y-20 z-0")),
				Div(
					Class("relative w-[300px] h-[600px] bg-dark-surface border-8 border-gray-800 rounded-[48px] shadow-[0_30px_60px_-15px_rgba(139,92,246,0.3)] overflow-hidden z-20 [transform:rotateY(-12deg)_rotateX(6deg)] transition-transform duration-500 ease-out group-hover:[transform:none]"),
					Img(Src(hero.Mockup), Alt("App Mockup"), Class("w-full h-full object-cover opacity-90")),
				),
			),
		),
	)
}

func featureCard(index int, f content.Feature) g.Node {
	return Div(
		Class("group p-8 rounded-3xl bg-dark-surface border border-white/5 hover:border-primary/30 hover:bg-[#262f3d] transition-all duration-300 hover:-translate-y-3 hover:shadow-[0_20px_40px_-10px_rgba(0,0,0,0.4)]"),
		reveal("up", index),
		iconTile(f.Icon, 32, "w-20 h-20 rounded-2xl bg-gradient-to-br from-primary/10 to-secondary/10 mb-6 group-hover:scale-110 group-hover:rotate-6 transition-transform duration-300"),
		H3(Class("text-xl font-bold mb-3 text-white group-hover:text-primary transition-colors"), g.Text(f.Title)),
		P(Class("text-gray-400 leading-relaxed text-sm"), g.Text(f.Description)),
	)
}

func featuresSection() g.Node {
	return Section(
		ID("fitur"),
		Class("py-20 bg-black relative"),
		container(
			sectionHeading(content.FeaturesCopy, true),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Group(indexed(content.Features, featureCard)),
			),
		),
	)
}

func screenshotsSection() g.Node {
	return Section(
		Class("py-24 bg-gradient-to-b from-black to-[#050505] relative overflow-hidden"),
		Div(Class("absolute top-0 left-1/2 -translate-x-1/2 w-40 h-[1px] bg-gradient-to-r from-transparent via-primary/30 to-transparent")),
		Div(
			Class("container mx-auto px-6 mb-12 text-center"),
			reveal("fade", 0),
			H2(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text(content.ScreenshotsCopy.Title)),
			P(Class("text-gray-400"), g.Text(content.ScreenshotsCopy.Subtitle)),
		),
		Div(
			Class("flex overflow-x-auto pb-12 pt-4 px-6 md:px-20 gap-8 lg:gap-12 [scrollbar-width:none] snap-x snap-mandatory"),
			g.Group(indexed(content.Screenshots, func(i int, shot content.Screenshot) g.Node {
				return Div(
					Class("flex-none snap-center w-[280px] h-[560px] rounded-[36px] overflow-hidden border-4 border-gray-800 bg-black shadow-2xl relative hover:scale-105 hover:-translate-y-2 transition-transform duration-300 z-10 hover:z-20 hover:shadow-primary/20"),
					reveal("zoom", i),
					Img(Src(shot.Src), Alt(shot.Alt), Class("w-full h-full object-cover"), g.Attr("loading", "lazy")),
				)
			})),
		),
	)
}

func trustSection() g.Node {
	return Section(
		ID("privasi"),
		Class("py-20 bg-dark-surface relative border-t border-white/5"),
		Div(
			Class("container mx-auto px-6"),
			sectionHeading(content.TrustCopy, false),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Group(indexed(content.TrustItems, func(i int, item content.TrustItem) g.Node {
					return Div(
						Class("text-center p-6 rounded-3xl bg-black/40 border border-white/5"),
						reveal("up", i),
						iconTile(item.Icon, 32, "w-16 h-16 mx-auto rounded-2xl bg-white/5 mb-6"),
						H3(Class("text-xl font-bold mb-3 text-white"), g.Text(item.Title)),
						P(Class("text-gray-400 text-sm leading-relaxed"), g.Text(item.Description)),
					)
				})),
			),
			Div(
				Class("text-center mt-12"),
				A(
					Href("/privacy-policy"),
					Class("inline-flex items-center gap-2 text-primary hover:text-white transition-colors font-semibold"),
					g.Text("Baca Kebijakan Privasi"),
					icon("arrow-right", 16),
				),
			),
		),
	)
}

func aboutParagraph(runs []content.Run) g.Node {
	return P(
		Class("text-gray-300 text-lg md:text-xl leading-relaxed [&:not(:last-child)]:mb-8"),
		g.Map(runs, func(r content.Run) g.Node {
			switch {
			case r.Strong && r.Accented:
				return Strong(Class("text-primary"), g.Text(r.Text))
			case r.Strong:
				return Strong(Class("text-white"), g.Text(r.Text))
			default:
				return g.Text(r.Text)
			}
		}),
	)
}

func aboutSection() g.Node {
	about := content.AboutCopy
	return Section(
		ID("tentang"),
		Class("py-24 bg-gradient-to-b from-black to-dark-surface relative"),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("text-center max-w-4xl mx-auto"),
				reveal("up", 0),
				H2(Class("text-3xl md:text-4xl font-bold mb-4"), g.Text(about.Title)),
				P(Class("text-secondary font-medium mb-12 tracking-wide uppercase text-sm"), g.Text(about.Subtitle)),
				Div(
					Class("bg-white/5 border border-white/5 rounded-3xl p-8 md:p-12 backdrop-blur-sm shadow-xl"),
					g.Map(about.Paragraphs, aboutParagraph),
				),
			),
		),
	)
}

// indexed is g.Map with the element index, used for staggered reveals.
func indexed[T any](items []T, cb func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, cb(i, item))
	}
	return nodes
}
