package app

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/scrolldemo/internal/config"
	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/messages"
	"github.com/andyrewlee/scrolldemo/internal/safego"
)

// configWatcherDebounce is a var so tests can shorten it.
var configWatcherDebounce = 200 * time.Millisecond

// configWatcher reports writes to the config file. The parent directory is
// watched so editors that replace the file by rename are still seen.
type configWatcher struct {
	watcher *fsnotify.Watcher

	configPath string

	onChanged func()
	debounce  time.Duration

	mu        sync.Mutex
	timer     *time.Timer
	closed    bool
	closeOnce sync.Once
}

func newConfigWatcher(configPath string, onChanged func()) (*configWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	cw := &configWatcher{
		watcher:    watcher,
		configPath: filepath.Clean(configPath),
		onChanged:  onChanged,
		debounce:   configWatcherDebounce,
	}
	if err := watcher.Add(filepath.Dir(cw.configPath)); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	return cw, nil
}

func (cw *configWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if cw.isConfigEvent(event) {
				cw.scheduleNotify()
			}
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Debug("config watcher: %v", err)
		}
	}
}

func (cw *configWatcher) Close() error {
	var err error
	cw.closeOnce.Do(func() {
		cw.mu.Lock()
		cw.closed = true
		if cw.timer != nil {
			cw.timer.Stop()
			cw.timer = nil
		}
		cw.mu.Unlock()
		err = cw.watcher.Close()
	})
	return err
}

func (cw *configWatcher) isConfigEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != cw.configPath {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (cw *configWatcher) scheduleNotify() {
	if cw.onChanged == nil {
		return
	}
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.closed {
		return
	}
	if cw.timer == nil {
		cw.timer = time.AfterFunc(cw.debounce, cw.fire)
	} else {
		cw.timer.Reset(cw.debounce)
	}
}

func (cw *configWatcher) fire() {
	cw.mu.Lock()
	if cw.closed {
		cw.mu.Unlock()
		return
	}
	cw.timer = nil
	cw.mu.Unlock()
	cw.onChanged()
}

// startConfigWatcher begins hot reload when the app has a config path.
func (a *App) startConfigWatcher() {
	if a.watcher != nil || a.config == nil || a.config.Paths == nil || a.config.Paths.ConfigPath == "" {
		return
	}
	paths := a.config.Paths
	if err := paths.EnsureDirectories(); err != nil {
		logging.Warn("Config watcher disabled: %v", err)
		return
	}
	cw, err := newConfigWatcher(paths.ConfigPath, func() {
		cfg, err := config.LoadFrom(paths)
		a.enqueueExternalMsg(messages.ConfigReloaded{Config: cfg, Err: err})
	})
	if err != nil {
		logging.Warn("Config watcher disabled: %v", err)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.watcher = cw
	a.watchCancel = cancel
	safego.GoContext(ctx, "config-watcher", cw.Run)
}

func (a *App) handleConfigReloaded(msg messages.ConfigReloaded) tea.Cmd {
	if msg.Err != nil {
		logging.Warn("Config reload failed: %v", msg.Err)
		return a.toast.ShowToast(messages.Toast{Message: "Config error: " + msg.Err.Error(), Level: messages.ToastError})
	}
	if msg.Config == nil {
		return nil
	}
	prev := a.config
	a.config = msg.Config
	if a.config.Paths == nil && prev != nil {
		a.config.Paths = prev.Paths
	}
	logging.SetLevel(logging.ParseLevel(a.config.LogLevel))
	logging.Info("Config reloaded from %s", a.config.Paths.ConfigPath)

	a.applyWheelSettings()
	cmd := a.applyListSettings(a.config.List)
	return tea.Batch(cmd, a.toast.ShowToast(messages.Toast{Message: "Config reloaded", Level: messages.ToastSuccess}))
}
