// Package accumulator buffers the interesting things that happen during one
// unit of work so they can be reconciled once, right before commit.
//
// Each bucket is an insertion-ordered set: adding an item that is already
// present is a no-op. Buckets are created on first add and disappear once
// drained or emptied.
package accumulator

import "sort"

// Key names a bucket and fixes the type of the items it holds.
type Key[T comparable] struct {
	name string
}

func NewKey[T comparable](name string) Key[T] {
	return Key[T]{name: name}
}

func (k Key[T]) String() string {
	return k.name
}

// Accumulator is scoped to a single transaction and is not safe for concurrent use.
type Accumulator struct {
	buckets map[string]bucket
}

func New() *Accumulator {
	return &Accumulator{buckets: make(map[string]bucket)}
}

type bucket interface {
	len() int
}

type set[T comparable] struct {
	items []T
	index map[T]struct{}
}

func (s *set[T]) len() int {
	return len(s.items)
}

func lookup[T comparable](a *Accumulator, k Key[T]) *set[T] {
	b, ok := a.buckets[k.name]
	if !ok {
		return nil
	}
	return b.(*set[T])
}

// Add appends item to the bucket unless it is already there. It reports whether item was added.
func Add[T comparable](a *Accumulator, k Key[T], item T) bool {
	s := lookup(a, k)
	if s == nil {
		s = &set[T]{index: make(map[T]struct{})}
		a.buckets[k.name] = s
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

// Remove deletes item from the bucket, keeping the order of the rest.
func Remove[T comparable](a *Accumulator, k Key[T], item T) bool {
	s := lookup(a, k)
	if s == nil {
		return false
	}
	if _, ok := s.index[item]; !ok {
		return false
	}
	delete(s.index, item)
	for i, it := range s.items {
		if it == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if len(s.items) == 0 {
		delete(a.buckets, k.name)
	}
	return true
}

func Contains[T comparable](a *Accumulator, k Key[T], item T) bool {
	s := lookup(a, k)
	if s == nil {
		return false
	}
	_, ok := s.index[item]
	return ok
}

func Len[T comparable](a *Accumulator, k Key[T]) int {
	s := lookup(a, k)
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Items returns a copy of the bucket in insertion order without draining it.
func Items[T comparable](a *Accumulator, k Key[T]) []T {
	s := lookup(a, k)
	if s == nil {
		return nil
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Drain empties the bucket and returns its items in insertion order.
func Drain[T comparable](a *Accumulator, k Key[T]) []T {
	s := lookup(a, k)
	if s == nil {
		return nil
	}
	delete(a.buckets, k.name)
	return s.items
}

// Pop removes and returns the most recently added item.
func Pop[T comparable](a *Accumulator, k Key[T]) (T, bool) {
	var zero T
	s := lookup(a, k)
	if s == nil {
		return zero, false
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items = s.items[:last]
	delete(s.index, item)
	if len(s.items) == 0 {
		delete(a.buckets, k.name)
	}
	return item, true
}

// Pending lists the names of buckets that still hold items, sorted.
func (a *Accumulator) Pending() []string {
	names := make([]string, 0, len(a.buckets))
	for name, b := range a.buckets {
		if b.len() > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
