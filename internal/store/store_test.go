package store

import "testing"

func TestOpenSeedsOnce(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	items, err := s.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 6 {
		t.Fatalf("seeded items = %d, want 6", len(items))
	}
	if items[0].Title != "Inbox" {
		t.Fatalf("first item = %q, want Inbox", items[0].Title)
	}
}

func TestGet(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	it, err := s.Get(2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if it.Title != "Today" {
		t.Fatalf("item 2 = %q, want Today", it.Title)
	}
	if _, err := s.Get(999); err == nil {
		t.Fatalf("expected error for missing item")
	}
}
