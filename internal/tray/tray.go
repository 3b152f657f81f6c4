// Package tray provides the system tray interface for poseview.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray is the system tray menu: live FPS readout, camera switch, mirror
// toggle, and quit.
type Tray struct {
	onSwitch func()
	onMirror func(mirrored bool)
	onQuit   func()
	mirrored bool
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuFPS    *systray.MenuItem
	menuMirror *systray.MenuItem
}

// New creates a Tray with the given initial mirror state.
func New(mirrored bool) *Tray {
	return &Tray{mirrored: mirrored}
}

// OnSwitch sets the callback for the switch camera menu item.
func (t *Tray) OnSwitch(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSwitch = fn
}

// OnMirror sets the callback for the mirror toggle menu item.
func (t *Tray) OnMirror(fn func(mirrored bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onMirror = fn
}

// OnQuit sets the callback for the quit menu item.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Poseview")
	systray.SetTooltip("Poseview Landmark Overlay")

	t.menuFPS = systray.AddMenuItem("FPS: 0", "Current frame rate")
	t.menuFPS.Disable()
	systray.AddSeparator()

	menuSwitch := systray.AddMenuItem("Switch Camera", "Toggle front/back camera")
	t.menuMirror = systray.AddMenuItem(mirrorTitle(t.mirrored), "Toggle overlay mirroring")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Poseview")

	go func() {
		for {
			select {
			case <-menuSwitch.ClickedCh:
				t.handleSwitch()
			case <-t.menuMirror.ClickedCh:
				t.handleMirror()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {}

func (t *Tray) handleSwitch() {
	t.mu.RLock()
	callback := t.onSwitch
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

func (t *Tray) handleMirror() {
	t.mu.Lock()
	t.mirrored = !t.mirrored
	mirrored := t.mirrored
	t.menuMirror.SetTitle(mirrorTitle(mirrored))
	callback := t.onMirror
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(mirrored)
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetFPS updates the FPS readout in the menu.
func (t *Tray) SetFPS(fps int) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuFPS != nil {
		t.menuFPS.SetTitle(fmt.Sprintf("FPS: %d", fps))
	}
}

// SetMirrored updates the mirror toggle to reflect an external change,
// e.g. a camera switch activating a facing with a different policy.
func (t *Tray) SetMirrored(mirrored bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mirrored = mirrored
	if t.menuMirror != nil {
		t.menuMirror.SetTitle(mirrorTitle(mirrored))
	}
}

func mirrorTitle(mirrored bool) string {
	if mirrored {
		return "● Mirrored"
	}
	return "○ Mirrored"
}
