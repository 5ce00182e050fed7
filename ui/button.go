package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

// buttonOption represents configuration options for buttons
type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href       string
	external   bool
	class      string
	leading    g.Node
	attributes []g.Node
}

// withHref makes the button a link with the specified href
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

// withExternal marks the link as leaving the site, so boosted navigation skips it.
func withExternal() buttonOption {
	return func(c *buttonConfig) {
		c.external = true
	}
}

// withClass adds additional CSS classes
func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

// withLeading renders node before the label, e.g. a store badge.
func withLeading(node g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.leading = node
	}
}

// withAttributes adds additional g.Node attributes
func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

// buttonStyled creates a styled button with the given text, base class, and options
func buttonStyled(text, baseClass string, options ...buttonOption) g.Node {
	config := &buttonConfig{}

	for _, option := range options {
		option(config)
	}

	class := baseClass
	if config.class != "" {
		class += " " + config.class
	}

	attrs := []g.Node{Class(class)}
	if config.external {
		attrs = append(attrs, hx.Boost("false"))
	}
	attrs = append(attrs, config.attributes...)
	if config.leading != nil {
		attrs = append(attrs, config.leading, Span(g.Text(text)))
	} else {
		attrs = append(attrs, g.Text(text))
	}

	if config.href != "" {
		attrs = append([]g.Node{Href(config.href)}, attrs...)
		return A(attrs...)
	}

	return Button(append([]g.Node{Type("button")}, attrs...)...)
}

// buttonPrimary creates the purple pill used for downloads and calls to action.
func buttonPrimary(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "inline-flex items-center justify-center gap-3 px-7 py-3 bg-primary text-white rounded-full font-bold shadow-[0_4px_15px_rgba(139,92,246,0.4)] hover:bg-primary-dark hover:-translate-y-0.5 hover:shadow-[0_8px_25px_rgba(139,92,246,0.5)] transition-all", options...)
}

// buttonGhost creates the translucent secondary pill.
func buttonGhost(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "inline-flex items-center justify-center px-8 py-4 bg-white/5 text-white border border-white/10 rounded-full font-bold hover:bg-white/10 hover:-translate-y-1 transition-all", options...)
}

// downloadButton links to the store listing.
func downloadButton(storeURL string, options ...buttonOption) g.Node {
	return buttonPrimary("Download App", append([]buttonOption{withHref(storeURL), withExternal()}, options...)...)
}
