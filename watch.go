package bistro

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bistroconsulting/bistro/content"
)

const reloadDebounce = 500 * time.Millisecond

// Watch reloads the content file whenever it changes and swaps it in with
// SetSite. A file that fails to load is logged and the previous content
// keeps being served. Watch blocks until ctx is cancelled.
func (a *App) Watch(ctx context.Context) error {
	if a.Config.ContentFile == "" {
		return errors.New("bistro: watch: no content file configured")
	}
	target, err := filepath.Abs(a.Config.ContentFile)
	if err != nil {
		return fmt.Errorf("bistro: watch: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("bistro: watch: %w", err)
	}
	defer watcher.Close()

	// Editors often save by renaming a temp file over the original, which
	// drops a watch on the file itself. Watch the directory instead.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("bistro: watch %s: %w", filepath.Dir(target), err)
	}
	a.Log.Info().Str("file", a.Config.ContentFile).Msg("watching content")

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isReloadEvent(event, target) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, a.reloadContent)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.Log.Warn().Err(err).Msg("content watcher")
		}
	}
}

func isReloadEvent(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (a *App) reloadContent() {
	s, err := content.LoadFile(a.Config.ContentFile)
	if err != nil {
		a.Log.Error().Err(err).Str("file", a.Config.ContentFile).Msg("content reload failed, keeping previous content")
		return
	}
	a.SetSite(s)
	a.Log.Info().Str("file", a.Config.ContentFile).Msg("content reloaded")
}
