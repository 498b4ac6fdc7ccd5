package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, dir string, opts Options) <-chan []string {
	t.Helper()

	batches := make(chan []string, 8)
	w, err := New([]string{dir}, func(_ context.Context, changed []string) error {
		batches <- changed
		return nil
	}, opts)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
		assert.NoError(t, w.Close())
	})

	return batches
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Debounce = 50 * time.Millisecond
	opts.IgnoreFiles = []string{"accessors_gen.go"}

	return opts
}

func TestWatcher_BatchesGoFiles(t *testing.T) {
	dir := t.TempDir()
	batches := startWatcher(t, dir, testOptions())

	file := filepath.Join(dir, "point.go")
	require.NoError(t, os.WriteFile(file, []byte("package p\n"), 0o644))
	require.NoError(t, os.WriteFile(file, []byte("package p\n\ntype Point struct{}\n"), 0o644))

	select {
	case changed := <-batches:
		assert.Equal(t, []string{file}, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch delivered")
	}
}

func TestWatcher_IgnoresGeneratedAndOtherFiles(t *testing.T) {
	dir := t.TempDir()
	batches := startWatcher(t, dir, testOptions())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "accessors_gen.go"), []byte("package p\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case changed := <-batches:
		t.Fatalf("unexpected batch %v", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_NewDirectories(t *testing.T) {
	dir := t.TempDir()
	batches := startWatcher(t, dir, testOptions())

	sub := filepath.Join(dir, "shapes")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Give the watcher a moment to pick up the new directory.
	time.Sleep(100 * time.Millisecond)

	file := filepath.Join(sub, "box.go")
	require.NoError(t, os.WriteFile(file, []byte("package shapes\n"), 0o644))

	select {
	case changed := <-batches:
		assert.Contains(t, changed, file)
	case <-time.After(5 * time.Second):
		t.Fatal("no batch delivered")
	}
}

func TestWatcher_SkipsIgnoredDirs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "testdata", "x"), 0o755))

	w, err := New([]string{dir}, func(context.Context, []string) error { return nil }, testOptions())
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, []string{dir}, w.fs.WatchList())
}

func TestWatcher_Relevant(t *testing.T) {
	w := &Watcher{opts: testOptions()}

	assert.True(t, w.relevant("/a/b/point.go"))
	assert.False(t, w.relevant("/a/b/accessors_gen.go"))
	assert.False(t, w.relevant("/a/b/.point.go"))
	assert.False(t, w.relevant("/a/b/point.go.swp"))
}
