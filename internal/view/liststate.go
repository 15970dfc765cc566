package view

// List models a rendered collection as an authoritative snapshot from
// the backend plus a local overlay of pending removals applied after
// successful deletes. Items() reflects removals immediately, without a
// refetch; the next Reset with fresh backend data reconciles the
// overlay away, so local state can never drift from backend truth for
// longer than one refresh cycle.
type List[T any] struct {
	id      func(T) int64
	items   []T
	removed map[int64]struct{}
}

// NewList builds an empty list keyed by the given id accessor.
func NewList[T any](id func(T) int64) *List[T] {
	return &List[T]{id: id, removed: make(map[int64]struct{})}
}

// Reset installs a fresh authoritative snapshot and drops the overlay.
func (l *List[T]) Reset(items []T) {
	l.items = items
	l.removed = make(map[int64]struct{})
}

// Remove marks an item as deleted locally. Call it after the backend
// confirmed the delete.
func (l *List[T]) Remove(id int64) {
	l.removed[id] = struct{}{}
}

// Items returns the snapshot minus pending removals.
func (l *List[T]) Items() []T {
	if len(l.removed) == 0 {
		return l.items
	}
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if _, gone := l.removed[l.id(item)]; !gone {
			out = append(out, item)
		}
	}
	return out
}

// Len reports the visible item count.
func (l *List[T]) Len() int {
	return len(l.Items())
}
