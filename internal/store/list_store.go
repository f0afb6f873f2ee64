package store

import (
	"sync"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
)

// Action identifies a mutation kind for single-flight tracking. The
// pending flag is keyed by action kind, not record id, so at most one
// approve (for example) can be in flight per domain at a time.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionRemarks Action = "remarks"
	ActionRelease Action = "release"
	ActionDelete  Action = "delete"
)

// ListStore holds one domain's fetched collection, the single selected
// record (the one open in a detail view), a staleness flag, and the
// per-action pending flags. It is the only shared mutable state for a
// domain; all writes go through the review engine or the refetch path.
type ListStore[T model.ReviewRecord] struct {
	mu       sync.RWMutex
	records  []T
	selected *T
	stale    bool
	pending  map[Action]bool
}

func New[T model.ReviewRecord]() *ListStore[T] {
	return &ListStore[T]{
		stale:   true,
		pending: make(map[Action]bool),
	}
}

// Replace swaps in a freshly fetched collection and clears staleness.
// Last write wins; an earlier in-flight refetch landing later simply
// overwrites (stale-then-fresh, never corrupt).
func (s *ListStore[T]) Replace(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.stale = false
}

// Records returns a copy of the current collection.
func (s *ListStore[T]) Records() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Invalidate marks the collection stale so the next read path refetches.
func (s *ListStore[T]) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
}

func (s *ListStore[T]) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// Select opens the record with the given id in the detail view. Only
// one record can be selected at a time; selecting replaces any
// previous selection. Returns false if the id is not in the collection.
func (s *ListStore[T]) Select(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].RecordID() == id {
			rec := s.records[i]
			s.selected = &rec
			return true
		}
	}
	return false
}

// Selected returns the currently open record, if any.
func (s *ListStore[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

// ReplaceSelected swaps the open record for its updated server copy
// while keeping the detail view open (remarks editing).
func (s *ListStore[T]) ReplaceSelected(rec T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected != nil && (*s.selected).RecordID() == rec.RecordID() {
		s.selected = &rec
	}
}

// ClearSelection closes the detail view.
func (s *ListStore[T]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Remove drops a record locally without a refetch. Used by delete-type
// operations (charities) where the backend confirms removal directly.
func (s *ListStore[T]) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].RecordID() == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	if s.selected != nil && (*s.selected).RecordID() == id {
		s.selected = nil
	}
}

// BeginAction sets the pending flag for an action kind. Returns false
// if an action of that kind is already in flight (double-submit guard).
func (s *ListStore[T]) BeginAction(a Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[a] {
		return false
	}
	s.pending[a] = true
	return true
}

// EndAction clears the pending flag for an action kind.
func (s *ListStore[T]) EndAction(a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, a)
}

// Pending reports whether an action of the given kind is in flight.
func (s *ListStore[T]) Pending(a Action) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending[a]
}
