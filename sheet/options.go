package sheet

import "time"

// ClosedIndex is the sentinel snap index meaning fully closed / off screen.
const ClosedIndex = -1

// StackBehavior governs how a newly presented sheet treats sheets already
// on the stack.
type StackBehavior string

const (
	// StackPush leaves the current sheets where they are.
	StackPush StackBehavior = "push"
	// StackSwitch minimizes the current top sheet; it is restored when the
	// new sheet leaves the stack.
	StackSwitch StackBehavior = "switch"
	// StackReplace dismisses the current top sheet.
	StackReplace StackBehavior = "replace"
)

// View is a render subtree mounted through the Portal.
type View interface {
	View(width, height int) string
}

// Options configure a single sheet instance. The zero value is usable but
// note that DismissOnClose defaults to false in the zero value; use
// DefaultOptions for the usual modal behavior.
type Options struct {
	// Name is the stable key for the instance. Empty means a unique key is
	// generated at construction.
	Name string

	// StackBehavior is applied when the instance registers with the Stack.
	StackBehavior StackBehavior

	// Index is the snap index Present targets.
	Index int

	// DismissOnClose makes reaching ClosedIndex trigger full teardown.
	DismissOnClose bool

	// PanDownToClose mirrors the primitive's pan-down-to-close setting and
	// decides whether dismissing a never-opened sheet tears down
	// immediately instead of no-oping.
	PanDownToClose bool

	// Content is the subtree mounted through the Portal while presented.
	Content View

	// Surface is the animated primitive's control surface. The controller
	// holds it only between mount and teardown.
	Surface Surface

	// OnDismiss fires exactly once per completed teardown.
	OnDismiss func()

	// OnChange fires on every index report, including while minimized.
	OnChange func(index int)
}

// DefaultOptions returns the options a plain modal sheet wants: switch
// stacking and teardown on close.
func DefaultOptions() Options {
	return Options{
		StackBehavior:  StackSwitch,
		DismissOnClose: true,
	}
}

// SnapSpec carries optional animation parameters for a single move. The
// primitive interprets them; the controller forwards them verbatim.
type SnapSpec struct {
	Duration time.Duration
}

// SnapOption mutates a SnapSpec.
type SnapOption func(*SnapSpec)

// WithDuration overrides the animation duration for one move.
func WithDuration(d time.Duration) SnapOption {
	return func(s *SnapSpec) { s.Duration = d }
}

// ResolveSnapSpec folds options into a spec starting from the given default
// duration.
func ResolveSnapSpec(defaultDuration time.Duration, opts ...SnapOption) SnapSpec {
	spec := SnapSpec{Duration: defaultDuration}
	for _, opt := range opts {
		if opt != nil {
			opt(&spec)
		}
	}
	return spec
}
