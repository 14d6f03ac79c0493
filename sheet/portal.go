package sheet

// Portal mounts render subtrees outside their declaring parent, keyed by
// the owning sheet's name. Owners remove their own entries with Unmount;
// the hosting layer reclaims entries with Evict or Reset, which fire the
// entry's removal callback so the owner can react to losing its subtree.
type Portal struct {
	order   []string
	entries map[string]portalEntry
}

type portalEntry struct {
	view     View
	onRemove func()
}

// NewPortal returns an empty host.
func NewPortal() *Portal {
	return &Portal{entries: make(map[string]portalEntry)}
}

// Mount attaches a subtree under key. Mounting an existing key replaces
// the subtree and callback in place, keeping its order.
func (p *Portal) Mount(key string, view View, onRemove func()) {
	if _, ok := p.entries[key]; !ok {
		p.order = append(p.order, key)
	}
	p.entries[key] = portalEntry{view: view, onRemove: onRemove}
}

// Unmount removes a subtree at its owner's request. Silent and idempotent.
func (p *Portal) Unmount(key string) {
	p.remove(key)
}

// Evict removes a subtree on the host's initiative and notifies the owner.
func (p *Portal) Evict(key string) {
	entry, ok := p.entries[key]
	if !ok {
		return
	}
	p.remove(key)
	if entry.onRemove != nil {
		entry.onRemove()
	}
}

// Reset evicts every subtree, bottom-up mount order. Used when the hosting
// layer itself tears down.
func (p *Portal) Reset() {
	for _, key := range append([]string(nil), p.order...) {
		p.Evict(key)
	}
}

// Has reports whether a key is mounted.
func (p *Portal) Has(key string) bool {
	_, ok := p.entries[key]
	return ok
}

// Len returns the number of mounted subtrees.
func (p *Portal) Len() int {
	return len(p.entries)
}

// Views returns the mounted subtrees in mount order for compositing.
func (p *Portal) Views() []View {
	views := make([]View, 0, len(p.order))
	for _, key := range p.order {
		views = append(views, p.entries[key].view)
	}
	return views
}

// Keys returns the mounted keys in mount order.
func (p *Portal) Keys() []string {
	return append([]string(nil), p.order...)
}

func (p *Portal) remove(key string) {
	if _, ok := p.entries[key]; !ok {
		return
	}
	delete(p.entries, key)
	for i, k := range p.order {
		if k == key {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}
