package libstore

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
)

// Watch signals on the returned channel whenever the library file is written,
// created or replaced. Bursts coalesce into one signal. The channel closes
// when ctx is done or the watcher fails.
func (s *FileStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.OpError{Op: "libstore.watch", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &domain.OpError{Op: "libstore.watch", Kind: domain.KindExecution, Path: dir, Err: err}
	}
	// The store replaces the file by rename, so watch the directory.
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, &domain.OpError{Op: "libstore.watch", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	target := filepath.Clean(s.path)
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return out, nil
}
