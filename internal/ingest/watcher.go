package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/examforge/mcq-ingest/constants"
)

// WatchConfig controls directory watching for continuous ingestion.
type WatchConfig struct {
	Roots       []string      // directories to watch (recursive)
	InitialScan bool          // if true, walk roots and emit existing files
	Debounce    time.Duration // coalesce rapid write/rename bursts
}

// StartWatcher emits paths of ingestible documents (PDF, DOCX, TXT) as they
// appear or change under the configured roots. The channels close when ctx is
// cancelled. Writers that flush in bursts are coalesced by Debounce so a file
// is emitted once, after it settles.
func StartWatcher(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan string, <-chan error, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(cfg.Roots) == 0 {
		return nil, nil, errors.New("no roots provided")
	}

	evCh := make(chan string, 256)
	errCh := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("watcher.create_failed", "error", err)
		return nil, nil, err
	}

	addDir := func(root string) error {
		return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if d.IsDir() {
				return w.Add(path)
			}
			if cfg.InitialScan && ingestible(path) {
				select {
				case evCh <- path:
				default:
				}
			}
			return nil
		})
	}
	for _, r := range cfg.Roots {
		if err := addDir(r); err != nil {
			logger.Error("watcher.add_root_failed", "root", r, "error", err)
			_ = w.Close()
			return nil, nil, err
		}
	}

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() { _ = w.Close() }()

		// The debounce timer fires on its own goroutine, so it only signals
		// flushCh; pending and evCh are touched by this goroutine alone.
		// flushCh is buffered and never closed, so a late timer cannot crash
		// a watcher that already shut down.
		flushCh := make(chan struct{}, 1)
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		pending := map[string]struct{}{}

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-flushCh:
				sendPending()
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if e.Op&fsnotify.Create == fsnotify.Create {
					// New subdirectories must be watched too; Add on a plain
					// file fails and is ignored.
					_ = w.Add(e.Name)
				}

				if ingestible(e.Name) && e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
					pending[e.Name] = struct{}{}
					if cfg.Debounce > 0 {
						if timer != nil {
							timer.Stop()
						}
						timer = time.AfterFunc(cfg.Debounce, func() {
							select {
							case flushCh <- struct{}{}:
							default:
							}
						})
					} else {
						sendPending()
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("watcher.error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}

func ingestible(path string) bool {
	_, ok := constants.FormatForExtension(filepath.Ext(path))
	return ok
}
