package watch

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/josesiqueira/tampere-food-intelligence/internal/menu"
)

// ErrFolderMissing wraps the startup failure for a missing watch folder.
type ErrFolderMissing struct {
	Folder string
}

func (e *ErrFolderMissing) Error() string {
	return fmt.Sprintf("watch folder %q not found", e.Folder)
}

// Watcher observes one directory (non-recursive) for new menu images.
type Watcher struct {
	folder string
}

func New(folder string) *Watcher {
	return &Watcher{folder: folder}
}

func (w *Watcher) Folder() string {
	return w.folder
}

// CheckFolder fails fast when the watched directory does not exist.
func (w *Watcher) CheckFolder() error {
	info, err := os.Stat(w.folder)
	if err != nil || !info.IsDir() {
		return &ErrFolderMissing{Folder: w.folder}
	}
	return nil
}

// Sweep lists the image files already present in the folder.
func (w *Watcher) Sweep() ([]string, error) {
	entries, err := os.ReadDir(w.folder)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.folder, err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if menu.IsImage(entry.Name()) {
			images = append(images, filepath.Join(w.folder, entry.Name()))
		}
	}

	return images, nil
}

// Run forwards create events for image files into out until ctx is
// cancelled. The fsnotify goroutine only filters and forwards; it
// never runs pipeline work itself.
func (w *Watcher) Run(ctx context.Context, out chan<- string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.folder); err != nil {
		return fmt.Errorf("watch %s: %w", w.folder, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if info, err := os.Stat(event.Name); err != nil || info.IsDir() {
				continue
			}
			if !menu.IsImage(event.Name) {
				continue
			}

			select {
			case out <- event.Name:
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// WaitStable blocks until the file size stops changing between two
// polls, so a half-written file is less likely to be read. Falls back
// to a fixed delay when the file cannot be stat'd.
func WaitStable(path string, deadline time.Duration) {
	const poll = 250 * time.Millisecond

	end := time.Now().Add(deadline)
	last := int64(-1)

	for time.Now().Before(end) {
		info, err := os.Stat(path)
		if err != nil {
			time.Sleep(500 * time.Millisecond)
			return
		}
		if info.Size() == last && last > 0 {
			return
		}
		last = info.Size()
		time.Sleep(poll)
	}
}
