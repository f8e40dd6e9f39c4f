package store

import "sync"

// IgnoreList is an insertion-ordered set of opaque identifiers. Downstream
// consumers use these to exclude catalog entries from selection; the sync
// loop itself does not consult them.
type IgnoreList struct {
	mu    sync.RWMutex
	order []string
	set   map[string]bool
}

func NewIgnoreList() *IgnoreList {
	return &IgnoreList{
		set: map[string]bool{},
	}
}

func (l *IgnoreList) List() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return append([]string{}, l.order...)
}

// Add inserts identifiers, skipping ones already present.
func (l *IgnoreList) Add(ids []string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, id := range ids {
		if id == "" || l.set[id] {
			continue
		}
		l.set[id] = true
		l.order = append(l.order, id)
	}
	return append([]string{}, l.order...)
}

// Remove deletes identifiers; unknown ones are ignored.
func (l *IgnoreList) Remove(ids []string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	drop := map[string]bool{}
	for _, id := range ids {
		drop[id] = true
	}

	kept := l.order[:0]
	for _, id := range l.order {
		if drop[id] {
			delete(l.set, id)
			continue
		}
		kept = append(kept, id)
	}
	l.order = kept
	return append([]string{}, l.order...)
}
