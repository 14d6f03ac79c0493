package sheet

import "testing"

type stubView struct{ body string }

func (v stubView) View(width, height int) string { return v.body }

func TestPortalMountOrderAndReplace(t *testing.T) {
	p := NewPortal()
	p.Mount("a", stubView{body: "one"}, nil)
	p.Mount("b", stubView{body: "two"}, nil)
	p.Mount("a", stubView{body: "three"}, nil)
	if p.Len() != 2 {
		t.Fatalf("len = %d, want 2", p.Len())
	}
	views := p.Views()
	if views[0].View(0, 0) != "three" || views[1].View(0, 0) != "two" {
		t.Fatalf("re-mount should replace in place, keeping order")
	}
}

func TestPortalUnmountIsSilentAndIdempotent(t *testing.T) {
	p := NewPortal()
	removed := 0
	p.Mount("a", stubView{}, func() { removed++ })
	p.Unmount("a")
	p.Unmount("a")
	if removed != 0 {
		t.Fatalf("owner-requested unmount must not fire the removal callback")
	}
	if p.Has("a") {
		t.Fatalf("entry survived unmount")
	}
}

func TestPortalEvictNotifiesOwner(t *testing.T) {
	p := NewPortal()
	removed := 0
	p.Mount("a", stubView{}, func() { removed++ })
	p.Evict("a")
	p.Evict("a")
	if removed != 1 {
		t.Fatalf("removal callback fired %d times, want 1", removed)
	}
}

func TestPortalResetEvictsAllInMountOrder(t *testing.T) {
	p := NewPortal()
	var order []string
	p.Mount("a", stubView{}, func() { order = append(order, "a") })
	p.Mount("b", stubView{}, func() { order = append(order, "b") })
	p.Reset()
	if p.Len() != 0 {
		t.Fatalf("reset left %d entries", p.Len())
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Fatalf("eviction order = %v, want [a b]", order)
	}
}
