package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCheckFolderMissing(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope"))

	err := w.CheckFolder()
	if err == nil {
		t.Fatal("expected error for missing folder")
	}

	if _, ok := err.(*ErrFolderMissing); !ok {
		t.Fatalf("expected *ErrFolderMissing, got %T", err)
	}
}

func TestCheckFolderExists(t *testing.T) {
	w := New(t.TempDir())
	if err := w.CheckFolder(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSweepListsOnlyImages(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"a.png", "b.JPG", "c.webp", "notes.txt", "menu.pdf"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	w := New(dir)
	images, err := w.Sweep()
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	if len(images) != 3 {
		t.Fatalf("expected 3 images, got %d: %v", len(images), images)
	}
	for _, path := range images {
		if filepath.Dir(path) != dir {
			t.Fatalf("unexpected path %s", path)
		}
	}
}

func TestSweepEmptyFolder(t *testing.T) {
	w := New(t.TempDir())

	images, err := w.Sweep()
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(images) != 0 {
		t.Fatalf("expected no images, got %v", images)
	}
}

func TestRunForwardsImageCreateEvents(t *testing.T) {
	dir := t.TempDir()
	w := New(dir)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan string, 8)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, events) }()

	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "menu.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-events:
		if filepath.Base(path) != "menu.png" {
			t.Fatalf("expected menu.png, got %s", path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no event delivered")
	}

	// The txt file must not arrive.
	select {
	case path := <-events:
		t.Fatalf("unexpected event for %s", path)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancellation")
	}
}

func TestWaitStableReturnsOnStableSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.png")
	if err := os.WriteFile(path, []byte("stable"), 0o644); err != nil {
		t.Fatal(err)
	}

	start := time.Now()
	WaitStable(path, 2*time.Second)

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("WaitStable took too long for a stable file: %v", elapsed)
	}
}
