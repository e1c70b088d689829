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

func TestWatchFiresOnWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.yml")
	require.NoError(t, os.WriteFile(path, []byte("title: Changelog\n"), 0o644))

	w, err := New(path, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func() error {
			select {
			case fired <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Give the watcher a moment to start before touching the file.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("title: Updated\n"), 0o644))

	select {
	case <-fired:
	case <-ctx.Done():
		t.Fatal("callback did not fire after write")
	}

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.yml")
	require.NoError(t, os.WriteFile(path, []byte("title: Changelog\n"), 0o644))

	w, err := New(path, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	fired := make(chan struct{}, 1)
	go func() {
		_ = w.Watch(ctx, func() error {
			select {
			case fired <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case <-fired:
		t.Fatal("callback fired for unrelated file")
	case <-ctx.Done():
	}
}

func TestWatchStopsOnCallbackError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.yml")
	require.NoError(t, os.WriteFile(path, []byte("title: Changelog\n"), 0o644))

	w, err := New(path, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func() error {
			return os.ErrInvalid
		})
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("title: Updated\n"), 0o644))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, os.ErrInvalid)
	case <-ctx.Done():
		t.Fatal("watch did not stop after callback error")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "CHANGELOG.yml")
	require.NoError(t, os.WriteFile(path, []byte("title: Changelog\n"), 0o644))

	w, err := New(path)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
