package geodata

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/wayfind-labs/wayfind-cli/internal/core/domain"
	"github.com/wayfind-labs/wayfind-cli/internal/core/ports/driven"
	"github.com/wayfind-labs/wayfind-cli/internal/logger"
)

//go:embed dataset.json
var embeddedDataset []byte

// Ensure Source implements the interface.
var _ driven.EntitySource = (*Source)(nil)

// Source is a JSON gazetteer implementation of driven.EntitySource.
// File-backed sources watch the dataset and replace the collection
// wholesale when it changes; it is never patched in place.
type Source struct {
	mu          sync.RWMutex
	collections domain.Collections
	loaded      bool

	path      string
	ready     chan struct{}
	readyOnce sync.Once
	reloaded  chan struct{}

	watcher   *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// New creates an entity source. An empty path loads the embedded
// sample gazetteer; otherwise the file at path is loaded and watched
// for changes.
func New(path string) (*Source, error) {
	s := newSource(path)

	if path == "" {
		collections, err := decode(embeddedDataset)
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded gazetteer: %w", err)
		}
		s.replace(collections)
		logger.Debug("Loaded embedded gazetteer (%d entities)", collections.Len())
		return s, nil
	}

	if err := s.loadFile(); err != nil {
		return nil, err
	}

	if err := s.watch(); err != nil {
		logger.Warn("Dataset watching unavailable: %v", err)
	}

	return s, nil
}

func newSource(path string) *Source {
	return &Source{
		path:     path,
		ready:    make(chan struct{}),
		reloaded: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

// Collections returns the loaded entity tiers.
func (s *Source) Collections(ctx context.Context) (domain.Collections, error) {
	if err := ctx.Err(); err != nil {
		return domain.Collections{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return domain.Collections{}, domain.ErrDataNotReady
	}
	return s.collections, nil
}

// Ready is closed once the first load completes.
func (s *Source) Ready() <-chan struct{} {
	return s.ready
}

// Reloaded signals each replacement of the collection after the first load.
func (s *Source) Reloaded() <-chan struct{} {
	return s.reloaded
}

// Close stops the file watcher.
func (s *Source) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if s.watcher != nil {
			err = s.watcher.Close()
		}
	})
	return err
}

// replace swaps in a new collection and signals readiness or reload.
func (s *Source) replace(collections domain.Collections) {
	s.mu.Lock()
	first := !s.loaded
	s.collections = collections
	s.loaded = true
	s.mu.Unlock()

	if first {
		s.readyOnce.Do(func() { close(s.ready) })
		return
	}

	// Coalesce: a pending reload signal already covers this replacement.
	select {
	case s.reloaded <- struct{}{}:
	default:
	}
}

func (s *Source) loadFile() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read gazetteer %s: %w", s.path, err)
	}

	collections, err := decode(data)
	if err != nil {
		return fmt.Errorf("failed to load gazetteer %s: %w", s.path, err)
	}

	s.replace(collections)
	logger.Debug("Loaded gazetteer %s (%d entities)", s.path, collections.Len())
	return nil
}

// watch starts a watcher on the dataset's directory. Watching the
// directory rather than the file survives editors that replace the
// file by rename.
func (s *Source) watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	s.watcher = watcher
	go s.watchLoop()
	return nil
}

func (s *Source) watchLoop() {
	target := filepath.Clean(s.path)

	for {
		select {
		case <-s.done:
			return

		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := s.loadFile(); err != nil {
				// Keep serving the previous collection on a bad write.
				logger.Warn("Dataset reload failed: %v", err)
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("Dataset watcher error: %v", err)
		}
	}
}
