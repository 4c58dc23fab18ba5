package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitForPath(t *testing.T, evCh <-chan string, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got, ok := <-evCh:
			require.True(t, ok, "event channel closed before %s arrived", want)
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestWatcherEmitsDroppedScan(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	path := filepath.Join(root, "alpha.jpg")
	require.NoError(t, os.WriteFile(path, []byte("scan"), 0o644))

	waitForPath(t, evCh, path)
}

func TestWatcherCoalescesWriteBursts(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 50 * time.Millisecond,
	})
	require.NoError(t, err)

	// several quick writes to the same scan must collapse into one event
	path := filepath.Join(root, "bravo.png")
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte(i)}, 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	waitForPath(t, evCh, path)

	select {
	case got, ok := <-evCh:
		if ok {
			t.Fatalf("unexpected second event for %s", got)
		}
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherIgnoresDisallowedExtensions(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))
	wanted := filepath.Join(root, "charlie.pdf")
	require.NoError(t, os.WriteFile(wanted, []byte("scan"), 0o644))

	// only the pdf comes through
	waitForPath(t, evCh, wanted)
}
