package sheet

// Surface is the imperative control surface of the animated sheet
// primitive. The controller never inspects primitive state through it; all
// feedback arrives as index reports on the onChange bridge.
type Surface interface {
	SnapToIndex(index int, opts ...SnapOption)
	SnapToPosition(position float64, opts ...SnapOption)
	Expand(opts ...SnapOption)
	Collapse(opts ...SnapOption)
	Close(opts ...SnapOption)
}

// Handle is the manager-facing side of a mounted sheet instance. The Stack
// uses it to suspend, resume and evict stacked sheets; end callers hold the
// full Controller instead.
type Handle interface {
	Key() string
	Minimize()
	Restore()
	Dismiss(opts ...SnapOption)
}
