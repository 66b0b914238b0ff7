package object

import "iter"

// List owns a collection of entities. Removal only marks the entity, which
// keeps indices stable while the current frame is still iterating; Compact
// later drops the removed entries in place, preserving insertion order.
type List[T Destructible] struct {
	items []T
	live  int
}

// Add appends an entity.
func (l *List[T]) Add(v T) {
	l.items = append(l.items, v)
	if !v.IsDestroyed() {
		l.live++
	}
}

// Remove marks the entity destroyed. Removing an entity twice is a no-op.
func (l *List[T]) Remove(v T) {
	if v.IsDestroyed() {
		return
	}
	v.MarkDestroyed()
	l.live--
}

// Len returns the number of live entities.
func (l *List[T]) Len() int {
	return l.live
}

// All yields live entities in insertion order. Entities removed during
// iteration are skipped from then on.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if v.IsDestroyed() {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Compact drops removed entities, reusing the backing array.
func (l *List[T]) Compact() {
	if len(l.items) == l.live {
		return
	}
	kept := l.items[:0]
	for _, v := range l.items {
		if !v.IsDestroyed() {
			kept = append(kept, v)
		}
	}
	// Release references held by the tail so removed entities can be collected.
	var zero T
	for i := len(kept); i < len(l.items); i++ {
		l.items[i] = zero
	}
	l.items = kept
}
