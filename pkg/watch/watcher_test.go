package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestWatcherBatchesBurstsOfWrites(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "form.yaml")
	if err := os.WriteFile(target, []byte("title: a\n"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	var (
		mu      sync.Mutex
		batches [][]Change
	)
	done := make(chan struct{}, 4)

	w, err := New([]string{dir}, func(changes []Change) {
		mu.Lock()
		batches = append(batches, changes)
		mu.Unlock()
		done <- struct{}{}
	}, Options{Debounce: 50 * time.Millisecond, Extensions: []string{".yaml"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	w.Start(ctx)

	// A burst of writes inside the debounce window collapses into one
	// batch.
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("title: b\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("timed out waiting for a batch")
	}

	mu.Lock()
	got := len(batches)
	first := batches[0]
	mu.Unlock()

	if got != 1 {
		t.Fatalf("batches = %d, want the burst debounced into 1", got)
	}
	if len(first) == 0 {
		t.Fatal("empty batch delivered")
	}
	for _, change := range first {
		if filepath.Base(change.Path) != "form.yaml" {
			t.Fatalf("unexpected path %q", change.Path)
		}
	}
}

func TestWatcherFiltersExtensions(t *testing.T) {
	dir := t.TempDir()

	delivered := make(chan []Change, 1)
	w, err := New([]string{dir}, func(changes []Change) {
		delivered <- changes
	}, Options{Debounce: 30 * time.Millisecond, Extensions: []string{".yaml"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	w.Start(ctx)

	if err := os.WriteFile(filepath.Join(dir, "ignore.swp"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case changes := <-delivered:
		t.Fatalf("filtered extension delivered a batch: %v", changes)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcherValidation(t *testing.T) {
	if _, err := New(nil, func([]Change) {}, Options{}); err == nil {
		t.Fatal("expected error for missing paths")
	}
	if _, err := New([]string{t.TempDir()}, nil, Options{}); err == nil {
		t.Fatal("expected error for missing handler")
	}
	if _, err := New([]string{filepath.Join(t.TempDir(), "absent")}, func([]Change) {}, Options{}); err == nil {
		t.Fatal("expected error for a nonexistent path")
	}
}
