package sheet

import "github.com/google/uuid"

// Controller owns one sheet instance's presentation lifecycle. It guards
// every imperative operation against the instance's current flags, sequences
// present/dismiss/minimize/restore, and bridges index reports from the
// control surface into teardown decisions.
//
// All methods must be called from the UI update loop; the type is not safe
// for concurrent use.
type Controller struct {
	key    string
	opts   Options
	stack  *Stack
	host   *Portal
	frames *FrameQueue

	surface Surface

	currentIndex   int
	restoreIndex   int
	minimized      bool
	forceDismissed bool
	mounted        bool
	attached       bool

	// gen increments on every terminal unmount so callbacks scheduled in a
	// previous present cycle cannot act on a later one.
	gen uint64
}

// New builds a controller bound to the shared stack, portal and frame
// queue. An empty Name gets a generated unique key.
func New(stack *Stack, host *Portal, frames *FrameQueue, opts Options) *Controller {
	key := opts.Name
	if key == "" {
		key = uuid.NewString()
	}
	return &Controller{
		key:          key,
		opts:         opts,
		stack:        stack,
		host:         host,
		frames:       frames,
		currentIndex: ClosedIndex,
		restoreIndex: ClosedIndex,
	}
}

// Key returns the instance's stable key.
func (c *Controller) Key() string { return c.key }

// CurrentIndex returns the last index reported by the control surface,
// ClosedIndex before the first report.
func (c *Controller) CurrentIndex() int { return c.currentIndex }

// Minimized reports whether the sheet is suspended.
func (c *Controller) Minimized() bool { return c.minimized }

// Mounted reports whether the render subtree has been requested and not yet
// torn down.
func (c *Controller) Mounted() bool { return c.mounted }

// Present mounts the sheet, or re-targets the configured index when it is
// already mounted. The portal mount is deferred to the next frame flush so
// first-paint layout can settle; the deferred func re-checks the flags at
// run time, so presents issued in the same frame collapse to one mount and
// a dismiss issued before the flush aborts the mount.
//
// The only error is a key collision with a different live instance,
// surfaced by the stack registry.
func (c *Controller) Present() error {
	if c.mounted {
		if s := c.surface; s != nil {
			s.SnapToIndex(c.opts.Index)
		}
		return nil
	}
	if err := c.stack.Add(c, c.opts.StackBehavior); err != nil {
		return err
	}
	c.mounted = true
	c.frames.Schedule(func() {
		if !c.mounted || c.attached {
			return
		}
		c.host.Mount(c.key, c.opts.Content, c.handleHostRemoved)
		c.attached = true
		c.surface = c.opts.Surface
	})
	return nil
}

// Dismiss starts teardown. A sheet that never opened is left alone unless
// pan-down-to-close is enabled; a minimized sheet has no visible state to
// animate from, so both cases skip the close animation and tear down
// directly. Otherwise the stack is told the key is leaving, the dismissal
// is marked uninterruptible, and the close request is forwarded to the
// surface; the onChange bridge finishes the job when the closed sentinel
// comes back.
func (c *Controller) Dismiss(opts ...SnapOption) {
	if !c.minimized && c.currentIndex == ClosedIndex {
		if c.opts.PanDownToClose {
			c.unmount()
		}
		return
	}
	if c.minimized {
		c.unmount()
		return
	}
	c.stack.WillUnmount(c.key)
	c.forceDismissed = true
	if s := c.surface; s != nil {
		s.Close(opts...)
	}
}

// Minimize suspends the sheet: it closes visually but stays mounted and
// registered. The index to come back to is captured now; if the surface has
// not reported one yet the configured index is used so a later Restore does
// not collapse to the closed sentinel.
func (c *Controller) Minimize() {
	if c.minimized {
		return
	}
	if c.currentIndex == ClosedIndex {
		c.restoreIndex = c.opts.Index
	} else {
		c.restoreIndex = c.currentIndex
	}
	c.minimized = true
	if s := c.surface; s != nil {
		s.Close()
	}
}

// Restore resumes a minimized sheet at its recorded index. An in-flight
// forced dismissal takes precedence and must not be undone.
func (c *Controller) Restore() {
	if !c.minimized || c.forceDismissed {
		return
	}
	c.minimized = false
	if s := c.surface; s != nil {
		s.SnapToIndex(c.restoreIndex)
	}
}

// SnapToIndex forwards to the surface unless the sheet is minimized.
func (c *Controller) SnapToIndex(index int, opts ...SnapOption) {
	if c.minimized {
		return
	}
	if s := c.surface; s != nil {
		s.SnapToIndex(index, opts...)
	}
}

// SnapToPosition forwards to the surface unless the sheet is minimized.
func (c *Controller) SnapToPosition(position float64, opts ...SnapOption) {
	if c.minimized {
		return
	}
	if s := c.surface; s != nil {
		s.SnapToPosition(position, opts...)
	}
}

// Expand forwards to the surface unless the sheet is minimized.
func (c *Controller) Expand(opts ...SnapOption) {
	if c.minimized {
		return
	}
	if s := c.surface; s != nil {
		s.Expand(opts...)
	}
}

// Collapse forwards to the surface unless the sheet is minimized.
func (c *Controller) Collapse(opts ...SnapOption) {
	if c.minimized {
		return
	}
	if s := c.surface; s != nil {
		s.Collapse(opts...)
	}
}

// Close forwards to the surface unless the sheet is minimized. Unlike
// Dismiss it does not mark the instance as leaving; teardown only follows
// through the onChange bridge when DismissOnClose is set.
func (c *Controller) Close(opts ...SnapOption) {
	if c.minimized {
		return
	}
	if s := c.surface; s != nil {
		s.Close(opts...)
	}
}

// HandleChange is the onChange bridge: the surface reports every discrete
// index it settles at, ClosedIndex when fully closed. The report is
// recorded and forwarded to the caller unconditionally. While minimized the
// report is informational only; minimize/restore own the state. Otherwise a
// closed report tears the instance down when DismissOnClose is set.
func (c *Controller) HandleChange(index int) {
	c.currentIndex = index
	if c.opts.OnChange != nil {
		c.opts.OnChange(index)
	}
	if c.minimized {
		return
	}
	if index == ClosedIndex && c.opts.DismissOnClose {
		c.unmount()
	}
}

// handleHostRemoved runs when the portal reclaims the subtree independently
// of this controller (parent teardown). A never-opened, non-minimized
// instance has nothing to tear down. Minimized sheets cannot animate (the
// subtree is already gone) and unmount directly. Otherwise the close is
// requested best-effort and a same-generation fallback is scheduled so
// cleanup happens even if the detached surface never reports closed.
func (c *Controller) handleHostRemoved() {
	if !c.minimized && c.currentIndex == ClosedIndex {
		return
	}
	c.mounted = false
	c.attached = false
	c.forceDismissed = true
	if c.minimized {
		c.unmount()
		return
	}
	c.stack.WillUnmount(c.key)
	if s := c.surface; s != nil {
		s.Close()
	}
	gen := c.gen
	c.frames.Schedule(func() {
		if c.gen == gen && c.forceDismissed {
			c.unmount()
		}
	})
}

// live reports whether there is anything left to tear down. After unmount
// resets the flags every further unmount call is a no-op, which keeps the
// racing teardown paths (dismiss fast path, onChange bridge, host removal)
// idempotent and OnDismiss at exactly one invocation per cycle.
func (c *Controller) live() bool {
	return c.mounted || c.attached || c.minimized || c.forceDismissed ||
		c.currentIndex != ClosedIndex
}

// unmount is the terminal path shared by every dismissal trigger.
func (c *Controller) unmount() {
	if !c.live() {
		return
	}
	c.mounted = false
	c.attached = false
	c.minimized = false
	c.forceDismissed = false
	c.currentIndex = ClosedIndex
	c.restoreIndex = ClosedIndex
	c.surface = nil
	c.gen++

	c.stack.Remove(c.key)
	c.host.Unmount(c.key)

	if c.opts.OnDismiss != nil {
		c.opts.OnDismiss()
	}
}
