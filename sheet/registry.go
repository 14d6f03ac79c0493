package sheet

import (
	"errors"
	"fmt"
)

// ErrDuplicateKey reports two live instances registering the same key.
var ErrDuplicateKey = errors.New("sheet: duplicate key")

type stackEntry struct {
	handle  Handle
	leaving bool
}

// Stack orders the sheet instances that are currently mounted. The last
// entry is the top (frontmost) sheet. It holds handles only; lifecycle
// flags stay with each controller.
type Stack struct {
	entries []stackEntry
}

// NewStack returns an empty registry.
func NewStack() *Stack {
	return &Stack{}
}

// Add registers a handle under its key.
//
// A handle already on top is left alone (idempotent re-present). A handle
// found lower in the stack moves to the top and is restored. A different
// handle under an existing key is a configuration error. A new key is
// inserted per the stacking behavior: push keeps the current top as is,
// switch minimizes it, replace dismisses it.
func (s *Stack) Add(h Handle, behavior StackBehavior) error {
	key := h.Key()
	idx := s.indexOf(key)
	if idx != -1 {
		if s.entries[idx].handle != h {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		if idx == len(s.entries)-1 {
			return nil
		}
		entry := s.entries[idx]
		s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
		s.entries = append(s.entries, entry)
		entry.handle.Restore()
		return nil
	}

	if top := s.top(); top != nil && !top.leaving {
		switch behavior {
		case StackSwitch:
			top.handle.Minimize()
		case StackReplace:
			top.handle.Dismiss()
		}
	}
	s.entries = append(s.entries, stackEntry{handle: h})
	return nil
}

// WillUnmount marks a key as leaving before its close animation finishes,
// so the sheet below can come back while the animation is still running.
func (s *Stack) WillUnmount(key string) {
	idx := s.indexOf(key)
	if idx == -1 {
		return
	}
	s.entries[idx].leaving = true
	if idx == len(s.entries)-1 && idx > 0 {
		below := s.entries[idx-1]
		if !below.leaving {
			below.handle.Restore()
		}
	}
}

// Remove deletes a key, restoring the new top when the removed entry was
// frontmost. Removing an absent key is a no-op; teardown paths may race to
// remove the same key.
func (s *Stack) Remove(key string) {
	idx := s.indexOf(key)
	if idx == -1 {
		return
	}
	wasTop := idx == len(s.entries)-1
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	if wasTop {
		if top := s.top(); top != nil && !top.leaving {
			top.handle.Restore()
		}
	}
}

// Has reports whether a key is registered.
func (s *Stack) Has(key string) bool {
	return s.indexOf(key) != -1
}

// Len returns the number of registered sheets.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Keys returns the registered keys bottom-up.
func (s *Stack) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		keys = append(keys, e.handle.Key())
	}
	return keys
}

func (s *Stack) top() *stackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) indexOf(key string) int {
	for i := range s.entries {
		if s.entries[i].handle.Key() == key {
			return i
		}
	}
	return -1
}
