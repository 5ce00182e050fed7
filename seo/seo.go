package seo

import (
	"encoding/json"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta is everything a page contributes to the document head.
type Meta struct {
	Title       string
	Description string
	Lang        string
	Canonical   string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []map[string]any
}

// New builds page metadata with Open Graph and Twitter fields derived from the
// title, description and absolute page URL.
func New(baseURL, path, title, description, lang string) Meta {
	canonical := Absolute(baseURL, path)
	image := Absolute(baseURL, "/assets/img/lvo_logo_square.png")
	return Meta{
		Title:       title,
		Description: description,
		Lang:        lang,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			Locale:      ogLocale(lang),
		},
		Twitter: Twitter{
			Card:  "summary",
			Image: image,
		},
	}
}

// Absolute joins baseURL and path with exactly one slash.
func Absolute(baseURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

func ogLocale(lang string) string {
	switch lang {
	case "id":
		return "id_ID"
	case "en":
		return "en_US"
	}
	return ""
}

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL, email string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if email != "" {
		m["contactPoint"] = map[string]any{
			"@type":       "ContactPoint",
			"email":       email,
			"contactType": "customer support",
		}
	}
	return m
}

// MobileApplication describes the advertised app.
func MobileApplication(name, description, storeURL string) map[string]any {
	return map[string]any{
		"@context":            "https://schema.org",
		"@type":               "MobileApplication",
		"name":                name,
		"description":         description,
		"operatingSystem":     "ANDROID",
		"applicationCategory": "SocialNetworkingApplication",
		"installUrl":          storeURL,
		"offers": map[string]any{
			"@type":         "Offer",
			"price":         "0",
			"priceCurrency": "IDR",
		},
	}
}

// WebPage is attached to informational pages.
func WebPage(name, url, description, lang string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebPage",
		"name":     name,
		"url":      url,
	}
	if description != "" {
		m["description"] = description
	}
	if lang != "" {
		m["inLanguage"] = lang
	}
	return m
}
