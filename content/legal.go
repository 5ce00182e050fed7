package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed pages/*.yaml
var pagesFS embed.FS

// ErrInvalidPage is wrapped by every validation failure during Load.
var ErrInvalidPage = errors.New("invalid legal page")

// Layout selects how a legal page arranges its sections.
type Layout string

const (
	LayoutProse Layout = "prose" // numbered panels, no icons
	LayoutList  Layout = "list"  // stacked cards with an icon beside the title
	LayoutGrid  Layout = "grid"  // two-column cards
)

// UpdatedToday makes a page show the render date as its last-updated date.
const UpdatedToday = "today"

const dateLayout = "2006-01-02"

// LegalPage is an informational page made of static sections.
type LegalPage struct {
	Slug         string         `yaml:"slug"`
	Path         string         `yaml:"path"`
	Order        int            `yaml:"order"`
	Lang         string         `yaml:"lang"`
	Layout       Layout         `yaml:"layout"`
	NavLabel     string         `yaml:"nav_label"`
	Title        string         `yaml:"title"`
	TitleStyle   string         `yaml:"title_style"`
	Subtitle     string         `yaml:"subtitle"`
	Updated      string         `yaml:"updated"`
	UpdatedLabel string         `yaml:"updated_label"`
	BackLabel    string         `yaml:"back_label"`
	SEO          PageSEO        `yaml:"seo"`
	Sections     []LegalSection `yaml:"sections"`
	Callout      *Callout       `yaml:"callout"`
}

type PageSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// LegalSection is one titled block of a legal page. Body is Markdown;
// BodyHTML is the sanitised rendering filled in by Load.
type LegalSection struct {
	Title    string `yaml:"title"`
	Icon     string `yaml:"icon"`
	Body     string `yaml:"body"`
	BodyHTML string `yaml:"-"`
}

// Callout is an optional highlighted box below the sections.
type Callout struct {
	Title       string `yaml:"title"`
	Body        string `yaml:"body"`
	ButtonLabel string `yaml:"button_label"`
	ButtonURL   string `yaml:"button_url"`
}

// DocumentTitle is the <title> of the page.
func (p *LegalPage) DocumentTitle() string {
	if p.SEO.Title != "" {
		return p.SEO.Title
	}
	return p.Title + " – " + Site.Name
}

// UpdatedOn returns the last-updated date to display, if the page has one.
func (p *LegalPage) UpdatedOn(now time.Time) (time.Time, bool) {
	switch p.Updated {
	case "":
		return time.Time{}, false
	case UpdatedToday:
		return now, true
	}
	t, err := time.Parse(dateLayout, p.Updated)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (p *LegalPage) validate() error {
	if p.Slug == "" {
		return fmt.Errorf("%w: missing slug", ErrInvalidPage)
	}
	if !strings.HasPrefix(p.Path, "/") || p.Path == "/" {
		return fmt.Errorf("%w: %s: path %q must be a non-root absolute path", ErrInvalidPage, p.Slug, p.Path)
	}
	if p.Path != strings.ToLower(p.Path) {
		return fmt.Errorf("%w: %s: path %q must be lower case", ErrInvalidPage, p.Slug, p.Path)
	}
	if p.Title == "" {
		return fmt.Errorf("%w: %s: missing title", ErrInvalidPage, p.Slug)
	}
	switch p.Layout {
	case LayoutProse, LayoutList, LayoutGrid:
	case "":
		p.Layout = LayoutList
	default:
		return fmt.Errorf("%w: %s: unknown layout %q", ErrInvalidPage, p.Slug, p.Layout)
	}
	if p.Lang == "" {
		p.Lang = "id"
	}
	if p.Updated != "" && p.Updated != UpdatedToday {
		if _, err := time.Parse(dateLayout, p.Updated); err != nil {
			return fmt.Errorf("%w: %s: updated %q is neither %q nor a date", ErrInvalidPage, p.Slug, p.Updated, UpdatedToday)
		}
	}
	if len(p.Sections) == 0 {
		return fmt.Errorf("%w: %s: no sections", ErrInvalidPage, p.Slug)
	}
	for i, s := range p.Sections {
		if s.Title == "" {
			return fmt.Errorf("%w: %s: section %d has no title", ErrInvalidPage, p.Slug, i+1)
		}
		if strings.TrimSpace(s.Body) == "" {
			return fmt.Errorf("%w: %s: section %q has no body", ErrInvalidPage, p.Slug, s.Title)
		}
	}
	return nil
}

// ---- Markdown ----

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

var sectionPolicy = newSectionPolicy()

func newSectionPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// RenderMarkdown converts Markdown to HTML and strips anything outside the
// section policy.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}
	return string(sectionPolicy.SanitizeBytes(buf.Bytes())), nil
}

// ---- Library ----

// Library is the immutable set of legal pages, indexed by path.
type Library struct {
	byPath map[string]*LegalPage
	bySlug map[string]*LegalPage
	pages  []*LegalPage
}

// LoadEmbedded loads the pages compiled into the binary.
func LoadEmbedded() (*Library, error) {
	sub, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load parses every *.yaml file at the root of fsys.
func Load(fsys fs.FS) (*Library, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("error listing legal pages: %w", err)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no pages found", ErrInvalidPage)
	}

	lib := &Library{
		byPath: make(map[string]*LegalPage, len(names)),
		bySlug: make(map[string]*LegalPage, len(names)),
	}
	for _, name := range names {
		page, err := loadPage(fsys, name)
		if err != nil {
			return nil, err
		}
		if _, dup := lib.byPath[page.Path]; dup {
			return nil, fmt.Errorf("%w: duplicate path %s", ErrInvalidPage, page.Path)
		}
		if _, dup := lib.bySlug[page.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %s", ErrInvalidPage, page.Slug)
		}
		lib.byPath[page.Path] = page
		lib.bySlug[page.Slug] = page
		lib.pages = append(lib.pages, page)
	}

	sort.SliceStable(lib.pages, func(i, j int) bool {
		if lib.pages[i].Order == lib.pages[j].Order {
			return lib.pages[i].Path < lib.pages[j].Path
		}
		return lib.pages[i].Order < lib.pages[j].Order
	})
	return lib, nil
}

func loadPage(fsys fs.FS, name string) (*LegalPage, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", name, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var page LegalPage
	if err := dec.Decode(&page); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	if page.Slug == "" {
		page.Slug = strings.TrimSuffix(path.Base(name), path.Ext(name))
	}
	if err := page.validate(); err != nil {
		return nil, err
	}

	for i := range page.Sections {
		html, err := RenderMarkdown(page.Sections[i].Body)
		if err != nil {
			return nil, fmt.Errorf("%s: section %q: %w", page.Slug, page.Sections[i].Title, err)
		}
		page.Sections[i].BodyHTML = html
	}
	return &page, nil
}

// ByPath returns the page served at path.
func (l *Library) ByPath(p string) (*LegalPage, bool) {
	page, ok := l.byPath[p]
	return page, ok
}

// Pages returns the pages in footer order.
func (l *Library) Pages() []*LegalPage {
	return l.pages
}

func (l *Library) Len() int {
	return len(l.pages)
}

// ---- Dates ----

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders t the way the page's language writes long dates.
func FormatDate(t time.Time, lang string) string {
	if lang == "id" {
		return fmt.Sprintf("%d %s %d", t.Day(), indonesianMonths[t.Month()-1], t.Year())
	}
	return t.Format("January 2, 2006")
}
