package export

import (
	"fmt"
	"io"
	"io/fs"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lvo-app/site/nav"
)

// SiteRoutes lists everything a static host needs: the pages, both mobile
// menu fragments for each page, and the crawler files.
func SiteRoutes() []string {
	routes := append([]string{}, nav.Routes...)
	routes = append(routes, nav.MenuPartialURLs(nav.Routes)...)
	return append(routes, "/sitemap.xml", "/robots.txt")
}

// OutputPath maps a route to the file that serves it from a static host:
// "/" is index.html, "/terms" is terms/index.html and routes with an
// extension keep their name.
func OutputPath(route string) string {
	route = path.Clean("/" + route)
	if route == "/" {
		return "index.html"
	}
	route = strings.TrimPrefix(route, "/")
	if path.Ext(route) != "" {
		return filepath.FromSlash(route)
	}
	return filepath.Join(filepath.FromSlash(route), "index.html")
}

// Routes fetches each route from app and writes the body under outDir.
// A non-200 response aborts the export.
func Routes(app *fiber.App, outDir string, routes []string) ([]string, error) {
	var written []string
	for _, route := range routes {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, route, nil), -1)
		if err != nil {
			return written, fmt.Errorf("error requesting %s: %w", route, err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return written, fmt.Errorf("error reading %s: %w", route, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			return written, fmt.Errorf("%s returned status %d", route, resp.StatusCode)
		}

		dst := filepath.Join(outDir, OutputPath(route))
		if err := writeFile(dst, body); err != nil {
			return written, err
		}
		written = append(written, dst)
	}
	return written, nil
}

// CopyDir copies the regular files under src into dst, keeping the layout.
func CopyDir(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", p, err)
		}
		return writeFile(filepath.Join(dst, rel), data)
	})
}

func writeFile(dst string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("error creating directory for %s: %w", dst, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("error writing %s: %w", dst, err)
	}
	return nil
}
