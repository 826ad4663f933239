package filesystem

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long a deck file must stay quiet before a reload fires
const DefaultDebounce = 150 * time.Millisecond

// Watcher implements ports.DeckWatcher with fsnotify.
// It watches the deck's directory so editors that save by rename are seen.
type Watcher struct {
	watcher  *fsnotify.Watcher
	target   string
	debounce time.Duration
	log      *zap.Logger

	events chan struct{}
	errors chan error

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher starts watching deckPath. The watcher runs until ctx is done
// or Close is called.
func NewWatcher(ctx context.Context, deckPath string, debounce time.Duration, log *zap.Logger) (*Watcher, error) {
	if deckPath == "" {
		return nil, fmt.Errorf("nothing to watch: deck is built in")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(deckPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deck path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		watcher:  fw,
		target:   abs,
		debounce: debounce,
		log:      log,
		events:   make(chan struct{}, 1),
		errors:   make(chan error, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go w.run(ctx)

	log.Debug("watching deck", zap.String("path", abs))
	return w, nil
}

// Events yields one value per settled change of the deck file
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Errors yields watcher failures
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and waits for its goroutine to exit
func (w *Watcher) Close() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("deck changed", zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("deck watcher error", zap.Error(err))
			select {
			case w.errors <- err:
			default:
			}

		case <-pending:
			pending = nil
			// Coalesce: a reload already queued covers this change too.
			select {
			case w.events <- struct{}{}:
			default:
			}
		}
	}
}
