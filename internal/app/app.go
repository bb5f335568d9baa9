package app

import (
	"context"
	"sync"
	"sync/atomic"

	tea "charm.land/bubbletea/v2"
	zone "github.com/lrstanley/bubblezone"

	"github.com/andyrewlee/scrolldemo/internal/config"
	"github.com/andyrewlee/scrolldemo/internal/logging"
	"github.com/andyrewlee/scrolldemo/internal/messages"
	"github.com/andyrewlee/scrolldemo/internal/ui/common"
	"github.com/andyrewlee/scrolldemo/internal/ui/layout"
	"github.com/andyrewlee/scrolldemo/internal/ui/scrolllist"
	"github.com/andyrewlee/scrolldemo/internal/wheel"
)

const appName = "Scroll Demo"

// App is the root Bubbletea model
type App struct {
	// Configuration
	config *config.Config
	system wheel.System // base wheel settings before config overrides

	// Wheel input shared by every list
	normalizer *wheel.Normalizer

	// UI Components
	layout *layout.Manager
	lists  [2]*scrolllist.Model
	zone   *zone.Manager
	toast  *common.ToastModel

	// State
	focusedPane messages.PaneType
	hoverPane   int // list under the pointer, -1 when none
	showAbout   bool

	// Layout
	width, height int
	keymap        KeyMap
	styles        common.Styles

	// Lifecycle
	ready    bool
	quitting bool
	err      error

	// Config hot reload
	watcher      *configWatcher
	watchCancel  context.CancelFunc
	shutdownOnce sync.Once

	// Messages produced outside the Bubble Tea loop
	externalMsgs        chan tea.Msg
	externalSender      func(tea.Msg)
	externalOnce        sync.Once
	externalDropLastLog atomic.Int64
}

// New creates a new App instance. sys supplies the platform wheel settings;
// nil uses the native ones.
func New(cfg *config.Config, sys wheel.System) *App {
	if cfg == nil {
		if def, err := config.DefaultConfig(); err == nil {
			cfg = def
		} else {
			cfg = &config.Config{}
		}
	}

	a := &App{
		config:      cfg,
		system:      sys,
		layout:      layout.NewManager(),
		zone:        zone.New(),
		toast:       common.NewToastModel(),
		focusedPane: messages.PanePrimary,
		hoverPane:   -1,
		keymap:      DefaultKeyMap(),
		styles:      common.DefaultStyles(),
	}
	a.normalizer = wheel.NewNormalizer(cfg.WheelSystem(sys))
	for i, pane := range []messages.PaneType{messages.PanePrimary, messages.PaneSecondary} {
		list := scrolllist.New(pane, a.normalizer)
		list.SetZone(a.zone)
		list.SetStyles(a.styles)
		a.lists[i] = list
	}
	a.toast.SetStyles(a.styles)
	a.applyListSettings(cfg.List)
	a.lists[0].Focus()
	return a
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	a.startConfigWatcher()
	return nil
}

// Shutdown stops background work. Safe to call more than once.
func (a *App) Shutdown() {
	a.shutdownOnce.Do(func() {
		if a.watchCancel != nil {
			a.watchCancel()
		}
		if a.watcher != nil {
			logging.WithError(a.watcher.Close(), "config watcher close")
		}
		if a.zone != nil {
			a.zone.Close()
		}
	})
}

// List returns the list for pane.
func (a *App) List(pane messages.PaneType) *scrolllist.Model {
	if pane == messages.PaneSecondary {
		return a.lists[1]
	}
	return a.lists[0]
}

// Normalizer returns the wheel normalizer shared by the lists.
func (a *App) Normalizer() *wheel.Normalizer { return a.normalizer }

// FocusedPane returns the list that receives keyboard input.
func (a *App) FocusedPane() messages.PaneType { return a.focusedPane }

// visibleLists returns the lists the layout currently shows.
func (a *App) visibleLists() []*scrolllist.Model {
	return a.lists[:a.layout.PaneCount()]
}

func (a *App) applyListSettings(s config.ListSettings) tea.Cmd {
	a.layout.SetSplit(s.Split)
	var cmds []tea.Cmd
	for _, list := range a.lists {
		cmds = append(cmds,
			list.SetItemCount(s.ItemCount),
			list.SetColumns(s.Columns),
			list.SetGap(s.Gap),
			list.SetItemHeight(s.ItemHeight),
			list.SetPadding(s.Padding),
		)
	}
	cmds = append(cmds, a.resizeLists())
	a.clampPanes()
	return tea.Batch(cmds...)
}

// clampPanes moves focus and hover off a pane the layout no longer shows.
func (a *App) clampPanes() {
	if a.focusedPane == messages.PaneSecondary && a.layout.PaneCount() < 2 {
		a.focusPane(messages.PanePrimary)
	}
	if a.hoverPane >= a.layout.PaneCount() {
		a.lists[a.hoverPane].ClearHover()
		a.hoverPane = -1
	}
}

// applyWheelSettings swaps in a fresh normalizer for the new settings.
func (a *App) applyWheelSettings() {
	a.normalizer = wheel.NewNormalizer(a.config.WheelSystem(a.system))
	for _, list := range a.lists {
		list.SetScroller(a.normalizer)
	}
}

func (a *App) resizeLists() tea.Cmd {
	var cmds []tea.Cmd
	for i, list := range a.lists {
		rect := a.layout.ListRect(i)
		cmds = append(cmds, list.SetSize(rect.Width, rect.Height))
	}
	return tea.Batch(cmds...)
}

func (a *App) focusPane(pane messages.PaneType) {
	if pane == messages.PaneSecondary && a.layout.PaneCount() < 2 {
		pane = messages.PanePrimary
	}
	a.focusedPane = pane
	for _, list := range a.lists {
		if list.Pane() == pane {
			list.Focus()
		} else {
			list.Blur()
		}
	}
}

func (a *App) focusedList() *scrolllist.Model {
	return a.List(a.focusedPane)
}
