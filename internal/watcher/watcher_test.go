package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")

	w, err := NewWatcher(path, HandlerFunc(func(FileEvent) error { return nil }))
	require.NoError(t, err)
	defer w.Close()

	tests := []struct {
		name     string
		event    fsnotify.Event
		want     EventType
		relevant bool
	}{
		{name: "write", event: fsnotify.Event{Name: path, Op: fsnotify.Write}, want: EventWrite, relevant: true},
		{name: "create", event: fsnotify.Event{Name: path, Op: fsnotify.Create}, want: EventCreate, relevant: true},
		{name: "rename", event: fsnotify.Event{Name: path, Op: fsnotify.Rename}, want: EventMove, relevant: true},
		{name: "chmod only", event: fsnotify.Event{Name: path, Op: fsnotify.Chmod}},
		{name: "other file", event: fsnotify.Event{Name: filepath.Join(dir, "other.txt"), Op: fsnotify.Write}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, relevant := w.translate(tt.event)
			assert.Equal(t, tt.relevant, relevant)
			if tt.relevant {
				assert.Equal(t, tt.want, got.Type)
				assert.Equal(t, path, got.Path)
			}
		})
	}
}

func TestRun_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0644))

	var calls atomic.Int32
	w, err := NewWatcher(path, HandlerFunc(func(FileEvent) error {
		calls.Add(1)
		return nil
	}), WithDebounce(100*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))
	}

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestNewWatcher_MissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "report.txt"), HandlerFunc(func(FileEvent) error { return nil }))
	assert.Error(t, err)
}
