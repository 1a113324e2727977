package mediaquery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/lookout/internal/infrastructure/colorscheme"
)

// ErrAlreadyRunning is returned when Run is called twice.
var ErrAlreadyRunning = errors.New("mediaquery: already running")

// DefaultDconfPath returns the dconf user database, $XDG_CONFIG_HOME/dconf/user.
func DefaultDconfPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dconf", "user")
}

// Run drives change notification until ctx is cancelled. Every configured
// trigger (portal signal, dconf database write, poll tick) refreshes all
// signals. A trigger that cannot start is logged and skipped.
func (e *Environment) Run(ctx context.Context) error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return ErrAlreadyRunning
	}
	e.running = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
	}()

	g, gctx := errgroup.WithContext(ctx)

	if e.portal != nil {
		g.Go(func() error { return e.watchPortal(gctx) })
	}
	if e.dconfPath != "" {
		g.Go(func() error { return e.watchDconf(gctx) })
	}
	if e.pollInterval > 0 {
		g.Go(func() error { return e.poll(gctx) })
	}

	e.log.Debug().
		Bool("portal", e.portal != nil).
		Str("dconf", e.dconfPath).
		Dur("poll_interval", e.pollInterval).
		Msg("media environment running")

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (e *Environment) watchPortal(ctx context.Context) error {
	err := e.portal.Subscribe(ctx, func(namespace, key string, _ any) {
		if _, ok := colorscheme.SignalForPortalKey(namespace, key); !ok {
			return
		}
		e.log.Debug().Str("namespace", namespace).Str("key", key).Msg("portal setting changed")
		e.Refresh()
	})
	if err != nil {
		// Not fatal: the other triggers keep running.
		e.log.Warn().Err(err).Msg("portal change subscription failed")
	}
	return nil
}

func (e *Environment) watchDconf(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		e.log.Warn().Err(err).Msg("failed to create dconf watcher")
		return nil
	}
	defer watcher.Close()

	// dconf replaces the database file on write, so the directory is watched.
	dir := filepath.Dir(e.dconfPath)
	if err := watcher.Add(dir); err != nil {
		e.log.Debug().Err(err).Str("dir", dir).Msg("dconf directory not watchable")
		return nil
	}

	name := filepath.Base(e.dconfPath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			e.log.Debug().Str("op", event.Op.String()).Msg("dconf database changed")
			e.Refresh()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.log.Warn().Err(err).Msg("dconf watcher error")
		}
	}
}

func (e *Environment) poll(ctx context.Context) error {
	ticker := time.NewTicker(e.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			e.Refresh()
		}
	}
}

// String describes the active triggers, for diagnostics.
func (e *Environment) String() string {
	return fmt.Sprintf("mediaquery(portal=%t dconf=%q poll=%s)", e.portal != nil, e.dconfPath, e.pollInterval)
}
