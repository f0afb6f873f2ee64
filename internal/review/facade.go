package review

import (
	"context"
	"io"
	"time"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/platform"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/stats"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/store"
)

// Reviewer is the type-erased view of an Engine, letting the HTTP
// layer route by domain name without caring about the record type.
type Reviewer interface {
	Domain() model.Domain
	ListRecords(ctx context.Context, filters platform.ListFilters) any
	Stats(ctx context.Context, now time.Time) stats.Snapshot
	Select(id int64) error
	Deselect()
	SelectedRecord() (any, bool)
	ApproveSelected(ctx context.Context, actorID string) (any, error)
	RejectSelected(ctx context.Context, actorID, reason, otherReason string) (any, error)
	RemarkSelected(ctx context.Context, actorID, remarks string, tags []string) (any, error)
	ReleaseSelected(ctx context.Context, actorID, releaseDate, filename string, file io.Reader) (any, error)
	SupportsRelease() bool
	ActionPending(kind store.Action) bool
}

type facade[T model.ReviewRecord] struct {
	e *Engine[T]
}

// Facade wraps the engine for domain-keyed routing.
func (e *Engine[T]) Facade() Reviewer {
	return facade[T]{e: e}
}

func (f facade[T]) Domain() model.Domain {
	return f.e.Domain()
}

func (f facade[T]) ListRecords(ctx context.Context, filters platform.ListFilters) any {
	return f.e.Records(ctx, filters)
}

func (f facade[T]) Stats(ctx context.Context, now time.Time) stats.Snapshot {
	return f.e.Snapshot(ctx, now)
}

func (f facade[T]) Select(id int64) error {
	return f.e.Select(id)
}

func (f facade[T]) Deselect() {
	f.e.Deselect()
}

func (f facade[T]) SelectedRecord() (any, bool) {
	rec, ok := f.e.Selected()
	if !ok {
		return nil, false
	}
	return rec, true
}

func (f facade[T]) ApproveSelected(ctx context.Context, actorID string) (any, error) {
	rec, err := f.e.Approve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (f facade[T]) RejectSelected(ctx context.Context, actorID, reason, otherReason string) (any, error) {
	rec, err := f.e.Reject(ctx, actorID, reason, otherReason)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (f facade[T]) RemarkSelected(ctx context.Context, actorID, remarks string, tags []string) (any, error) {
	rec, err := f.e.UpdateRemarks(ctx, actorID, remarks, tags)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (f facade[T]) ReleaseSelected(ctx context.Context, actorID, releaseDate, filename string, file io.Reader) (any, error) {
	rec, err := f.e.Release(ctx, actorID, releaseDate, filename, file)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (f facade[T]) SupportsRelease() bool {
	return f.e.SupportsRelease()
}

func (f facade[T]) ActionPending(kind store.Action) bool {
	return f.e.Store().Pending(kind)
}
