package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/scrolldemo/internal/config"
	"github.com/andyrewlee/scrolldemo/internal/messages"
)

func startConfigWatcherForTest(t *testing.T, path string, debounce time.Duration, changes chan<- struct{}) *configWatcher {
	t.Helper()

	cw, err := newConfigWatcher(path, func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("newConfigWatcher: %v", err)
	}
	cw.debounce = debounce

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cw.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		_ = cw.Close()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("config watcher did not stop")
		}
	})
	return cw
}

func waitForChange(t *testing.T, changes <-chan struct{}, timeout time.Duration) {
	t.Helper()
	select {
	case <-changes:
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for config change")
	}
}

func ensureNoChange(t *testing.T, changes <-chan struct{}, wait time.Duration) {
	t.Helper()
	select {
	case <-changes:
		t.Fatalf("unexpected config change")
	case <-time.After(wait):
	}
}

func TestConfigWatcherNotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	changes := make(chan struct{}, 4)
	startConfigWatcherForTest(t, path, 20*time.Millisecond, changes)

	if err := os.WriteFile(path, []byte(`{"list":{"columns":2}}`), 0o644); err != nil {
		t.Fatalf("update config: %v", err)
	}
	waitForChange(t, changes, 2*time.Second)
}

func TestConfigWatcherNotifiesOnCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	changes := make(chan struct{}, 4)
	startConfigWatcherForTest(t, path, 20*time.Millisecond, changes)

	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("create config: %v", err)
	}
	waitForChange(t, changes, 2*time.Second)
}

func TestConfigWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	changes := make(chan struct{}, 4)
	startConfigWatcherForTest(t, path, 20*time.Millisecond, changes)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}
	ensureNoChange(t, changes, 250*time.Millisecond)
}

func TestConfigWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	changes := make(chan struct{}, 4)
	startConfigWatcherForTest(t, path, 100*time.Millisecond, changes)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
	}
	waitForChange(t, changes, 2*time.Second)
	ensureNoChange(t, changes, 250*time.Millisecond)
}

func TestAppWatcherDeliversReload(t *testing.T) {
	paths := config.PathsAt(t.TempDir())
	cfg, err := config.LoadFrom(paths)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	origDebounce := configWatcherDebounce
	configWatcherDebounce = 20 * time.Millisecond
	t.Cleanup(func() { configWatcherDebounce = origDebounce })

	a := New(cfg, nil)
	t.Cleanup(a.Shutdown)

	received := make(chan tea.Msg, 4)
	a.SetMsgSender(func(msg tea.Msg) { received <- msg })
	a.Init()
	if a.watcher == nil {
		t.Fatalf("expected config watcher to start")
	}

	if err := os.WriteFile(paths.ConfigPath, []byte(`{"list":{"item_count":7}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	select {
	case msg := <-received:
		reload, ok := msg.(messages.ConfigReloaded)
		if !ok {
			t.Fatalf("expected ConfigReloaded, got %T", msg)
		}
		if reload.Err != nil || reload.Config.List.ItemCount != 7 {
			t.Fatalf("unexpected reload %+v", reload)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for reload message")
	}
}
