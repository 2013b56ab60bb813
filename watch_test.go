package bistro

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bistroconsulting/bistro/content"
)

func writeContent(t *testing.T, path, title string) {
	t.Helper()
	data := bytes.Replace(content.Embedded(), []byte("title: Grow Your Restaurant"), []byte("title: "+title), 1)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func newWatchApp(t *testing.T, path string) *App {
	t.Helper()
	cfg := SiteConfig{
		DatabasePath: filepath.Join(t.TempDir(), "bistro.db"),
		ContentFile:  path,
	}
	app := New(cfg, Views{}, WithLogger(zerolog.Nop()))
	if err := app.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func TestReloadContentSwapsSite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, "First Title")
	app := newWatchApp(t, path)

	if got := app.Site().Home.Hero.Title; got != "First Title" {
		t.Fatalf("Title = %q", got)
	}
	app.Cache.GetOrRender("/", func() ([]byte, error) { return []byte("cached"), nil })

	writeContent(t, path, "Second Title")
	app.reloadContent()

	if got := app.Site().Home.Hero.Title; got != "Second Title" {
		t.Errorf("Title = %q after reload", got)
	}
	if app.Cache.Len() != 0 {
		t.Error("reload should invalidate the page cache")
	}
}

func TestReloadContentKeepsSiteOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, "Good Title")
	app := newWatchApp(t, path)

	if err := os.WriteFile(path, []byte("home: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	app.reloadContent()

	if got := app.Site().Home.Hero.Title; got != "Good Title" {
		t.Errorf("Title = %q, previous content should be kept", got)
	}
}

func TestIsReloadEvent(t *testing.T) {
	target, _ := filepath.Abs("content.yaml")
	other, _ := filepath.Abs("other.yaml")

	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: other, Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := isReloadEvent(tt.event, target); got != tt.want {
			t.Errorf("isReloadEvent(%v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	writeContent(t, path, "Before")
	app := newWatchApp(t, path)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Watch(ctx) }()

	// The watcher may not be registered yet, so keep rewriting until the
	// debounced reload lands.
	deadline := time.Now().Add(8 * time.Second)
	for app.Site().Home.Hero.Title != "After" {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("content was not reloaded")
		}
		writeContent(t, path, "After")
		time.Sleep(reloadDebounce + 300*time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchRequiresContentFile(t *testing.T) {
	app := New(SiteConfig{}, Views{})
	if err := app.Watch(context.Background()); err == nil {
		t.Fatal("expected error without a content file")
	}
}
