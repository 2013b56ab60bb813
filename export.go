package bistro

import (
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
)

// exportPages maps request paths to the files they are written to.
var exportPages = []struct {
	path string
	file string
	code int
}{
	{"/", "index.html", http.StatusOK},
	{"/about/", "about/index.html", http.StatusOK},
	{"/pricing/", "pricing/index.html", http.StatusOK},
	{"/pricing/yearly/", "pricing/yearly/index.html", http.StatusOK},
	{"/contact/", "contact/index.html", http.StatusOK},
	{"/__bistro_export_not_found__/", "404.html", http.StatusNotFound},
	{"/sitemap.xml", "sitemap.xml", http.StatusOK},
	{"/robots.txt", "robots.txt", http.StatusOK},
}

// Export renders the public site into outDir as static files, together
// with the embedded assets under public/. It returns the written paths,
// relative to outDir.
//
// An App that has not been initialized yet is exported without analytics
// or admin routes and with a throwaway database.
func (a *App) Export(outDir string) ([]string, error) {
	if !a.initialized {
		tmp, err := os.MkdirTemp("", "bistro-export-")
		if err != nil {
			return nil, fmt.Errorf("bistro: export: %w", err)
		}
		defer os.RemoveAll(tmp)
		a.Config.DatabasePath = filepath.Join(tmp, "export.db")
		a.Config.AnalyticsEnabled = false
		a.Config.AdminPassword = ""
		if err := a.Init(); err != nil {
			return nil, err
		}
		defer a.Close()
	}

	var written []string
	for _, p := range exportPages {
		body, err := a.fetch(p.path, p.code)
		if err != nil {
			return written, err
		}
		if err := writeExportFile(outDir, p.file, body); err != nil {
			return written, err
		}
		written = append(written, p.file)
	}

	assets, err := fs.Sub(EmbeddedAssets, "embedded")
	if err != nil {
		return written, fmt.Errorf("bistro: export: %w", err)
	}
	for _, name := range AssetNames() {
		data, err := fs.ReadFile(assets, name)
		if err != nil {
			return written, fmt.Errorf("bistro: export %s: %w", name, err)
		}
		file := "public/" + name
		if err := writeExportFile(outDir, file, data); err != nil {
			return written, err
		}
		written = append(written, file)
	}

	a.Log.Info().Str("dir", outDir).Int("files", len(written)).Msg("site exported")
	return written, nil
}

// fetch runs a GET through the full middleware chain.
func (a *App) fetch(path string, want int) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	if rec.Code != want {
		return nil, fmt.Errorf("bistro: export %s: status %d, want %d", path, rec.Code, want)
	}
	return io.ReadAll(rec.Result().Body)
}

func writeExportFile(outDir, name string, data []byte) error {
	path := filepath.Join(outDir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("bistro: export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("bistro: export %s: %w", strings.TrimPrefix(name, "/"), err)
	}
	return nil
}
