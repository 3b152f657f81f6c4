// Package control owns the camera state: which facing is requested, which
// source is active, and whether the overlay is mirrored.
package control

import (
	"log"
	"sync"

	"github.com/ayusman/poseview/internal/capture"
)

// MirrorPolicy decides, per facing, whether the overlay is mirrored.
// Front cameras are conventionally mirrored to match what users expect
// from a selfie preview; back cameras usually are not, but deployments
// may override either.
type MirrorPolicy struct {
	Front bool
	Back  bool
}

// DefaultMirrorPolicy mirrors the front camera only.
func DefaultMirrorPolicy() MirrorPolicy {
	return MirrorPolicy{Front: true, Back: false}
}

// For returns the mirror setting for a facing.
func (p MirrorPolicy) For(f capture.Facing) bool {
	if f == capture.FacingBack {
		return p.Back
	}
	return p.Front
}

// Controller serializes camera switches and derives the mirror state from
// the granted facing. Switches complete fully (old source stopped, new
// source started, state updated) before the lock is released, so the
// render loop never observes a half-replaced source.
type Controller struct {
	mu        sync.Mutex
	source    capture.Source
	policy    MirrorPolicy
	requested capture.Facing
	mirror    bool
	running   bool
}

// NewController creates a controller for the given source. Start must be
// called before frames flow.
func NewController(source capture.Source, policy MirrorPolicy, initial capture.Facing) *Controller {
	return &Controller{
		source:    source,
		policy:    policy,
		requested: initial,
	}
}

// Start acquires the camera for the configured initial facing.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return nil
	}

	if err := c.source.Start(c.requested); err != nil {
		return err
	}
	c.running = true
	c.mirror = c.policy.For(c.source.Facing())

	log.Printf("Camera started: requested=%s granted=%s mirror=%v",
		c.requested, c.source.Facing(), c.mirror)
	return nil
}

// Stop releases the camera.
func (c *Controller) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return nil
	}
	c.running = false
	return c.source.Stop()
}

// Switch toggles the requested facing: stop the current acquisition, start
// the opposite one, recompute mirror state from the newly granted facing.
// Calls are serialized; a switch in flight completes before the next
// begins, and the hardware is never acquired twice concurrently.
func (c *Controller) Switch() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.requested.Opposite()

	if c.running {
		if err := c.source.Stop(); err != nil {
			return err
		}
		c.running = false
	}

	c.requested = next
	if err := c.source.Start(next); err != nil {
		// Camera stays released; the loop draws nothing until a retry.
		return err
	}
	c.running = true
	c.mirror = c.policy.For(c.source.Facing())

	log.Printf("Camera switched: requested=%s granted=%s mirror=%v",
		next, c.source.Facing(), c.mirror)
	return nil
}

// Current returns the frame source and the mirror state for this
// iteration. The render loop calls it once per frame.
func (c *Controller) Current() (capture.Source, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source, c.mirror
}

// Facing returns the granted facing of the active source.
func (c *Controller) Facing() capture.Facing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.source.Facing()
}

// Requested returns the facing most recently asked for.
func (c *Controller) Requested() capture.Facing {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requested
}

// Mirror returns the current mirror state.
func (c *Controller) Mirror() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mirror
}

// SetMirror overrides the policy for one facing and recomputes the current
// mirror state. Used by the mirror toggle in the tray.
func (c *Controller) SetMirror(f capture.Facing, mirrored bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f == capture.FacingBack {
		c.policy.Back = mirrored
	} else {
		c.policy.Front = mirrored
	}
	if c.running {
		c.mirror = c.policy.For(c.source.Facing())
	}
}

// IsRunning reports whether an acquisition is active.
func (c *Controller) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
