package handlers

import (
	"encoding/xml"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lvo-app/site/local"
	"github.com/lvo-app/site/nav"
	"github.com/lvo-app/site/seo"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// BuildSitemap lists every routed page under baseURL.
func BuildSitemap(baseURL string, now time.Time) Sitemap {
	sitemap := Sitemap{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, p := range nav.Routes {
		u := SitemapURL{
			Loc:        seo.Absolute(baseURL, p),
			LastMod:    now.Format("2006-01-02"),
			ChangeFreq: "yearly",
			Priority:   "0.3",
		}
		if p == nav.HomePath {
			u.ChangeFreq = "weekly"
			u.Priority = "1.0"
		}
		sitemap.URLs = append(sitemap.URLs, u)
	}
	return sitemap
}

func (h *Handler) HandleSitemap(c *fiber.Ctx) error {
	body, err := xml.MarshalIndent(BuildSitemap(h.cfg.BaseURL, local.GetNow(c)), "", "  ")
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.SendString(xml.Header + string(body))
}

// HandleRobots allows all crawlers and points them at the sitemap.
func (h *Handler) HandleRobots(c *fiber.Ctx) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n\n")
	b.WriteString("Sitemap: " + seo.Absolute(h.cfg.BaseURL, "/sitemap.xml") + "\n")
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(b.String())
}
