package sheet

import (
	"errors"
	"testing"
)

type fakeHandle struct {
	key   string
	calls []string
}

func (h *fakeHandle) Key() string                { return h.key }
func (h *fakeHandle) Minimize()                  { h.calls = append(h.calls, "minimize") }
func (h *fakeHandle) Restore()                   { h.calls = append(h.calls, "restore") }
func (h *fakeHandle) Dismiss(opts ...SnapOption) { h.calls = append(h.calls, "dismiss") }

func lastCall(h *fakeHandle) string {
	if len(h.calls) == 0 {
		return ""
	}
	return h.calls[len(h.calls)-1]
}

func TestStackPushKeepsCurrentTop(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	b := &fakeHandle{key: "b"}
	if err := s.Add(a, StackPush); err != nil {
		t.Fatalf("add a: %v", err)
	}
	if err := s.Add(b, StackPush); err != nil {
		t.Fatalf("add b: %v", err)
	}
	if len(a.calls) != 0 {
		t.Fatalf("push must not touch the sheet below, got %v", a.calls)
	}
	if got := s.Keys(); got[0] != "a" || got[1] != "b" {
		t.Fatalf("keys = %v, want [a b]", got)
	}
}

func TestStackSwitchMinimizesCurrentTop(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	b := &fakeHandle{key: "b"}
	s.Add(a, StackSwitch)
	s.Add(b, StackSwitch)
	if lastCall(a) != "minimize" {
		t.Fatalf("switch should minimize the sheet below, calls = %v", a.calls)
	}
}

func TestStackReplaceDismissesCurrentTop(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	b := &fakeHandle{key: "b"}
	s.Add(a, StackPush)
	s.Add(b, StackReplace)
	if lastCall(a) != "dismiss" {
		t.Fatalf("replace should dismiss the sheet below, calls = %v", a.calls)
	}
}

func TestStackAddExistingTopIsNoop(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	s.Add(a, StackSwitch)
	if err := s.Add(a, StackSwitch); err != nil {
		t.Fatalf("re-add: %v", err)
	}
	if len(a.calls) != 0 || s.Len() != 1 {
		t.Fatalf("re-adding the top entry must be a no-op, calls = %v", a.calls)
	}
}

func TestStackAddExistingMovesToTopAndRestores(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	b := &fakeHandle{key: "b"}
	s.Add(a, StackPush)
	s.Add(b, StackPush)
	if err := s.Add(a, StackPush); err != nil {
		t.Fatalf("re-add a: %v", err)
	}
	if got := s.Keys(); got[0] != "b" || got[1] != "a" {
		t.Fatalf("keys = %v, want [b a]", got)
	}
	if lastCall(a) != "restore" {
		t.Fatalf("moving to top should restore, calls = %v", a.calls)
	}
}

func TestStackDuplicateKeyRejected(t *testing.T) {
	s := NewStack()
	s.Add(&fakeHandle{key: "a"}, StackPush)
	err := s.Add(&fakeHandle{key: "a"}, StackPush)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("err = %v, want ErrDuplicateKey", err)
	}
}

func TestStackWillUnmountRestoresSheetBelow(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	b := &fakeHandle{key: "b"}
	s.Add(a, StackPush)
	s.Add(b, StackPush)
	s.WillUnmount("b")
	if lastCall(a) != "restore" {
		t.Fatalf("will-unmount of the top should restore the one below, calls = %v", a.calls)
	}
	s.WillUnmount("missing") // must not panic
}

func TestStackWillUnmountBelowTopDoesNothing(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	b := &fakeHandle{key: "b"}
	s.Add(a, StackPush)
	s.Add(b, StackPush)
	s.WillUnmount("a")
	if len(b.calls) != 0 {
		t.Fatalf("removing a buried sheet must not touch the top, calls = %v", b.calls)
	}
}

func TestStackRemoveTopRestoresNewTop(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	b := &fakeHandle{key: "b"}
	s.Add(a, StackPush)
	s.Add(b, StackPush)
	s.Remove("b")
	if lastCall(a) != "restore" {
		t.Fatalf("expected restore of new top, calls = %v", a.calls)
	}
	if s.Has("b") || s.Len() != 1 {
		t.Fatalf("remove left stale state")
	}
	s.Remove("b") // idempotent
	if s.Len() != 1 {
		t.Fatalf("repeated remove changed the stack")
	}
}

func TestStackRemoveSkipsRestoreOfLeavingEntry(t *testing.T) {
	s := NewStack()
	a := &fakeHandle{key: "a"}
	b := &fakeHandle{key: "b"}
	c := &fakeHandle{key: "c"}
	s.Add(a, StackPush)
	s.Add(b, StackPush)
	s.Add(c, StackPush)
	s.WillUnmount("b")
	s.Remove("c")
	if lastCall(b) == "restore" {
		t.Fatalf("a leaving entry must not be restored, calls = %v", b.calls)
	}
}
