package review

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/platform"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/stats"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/store"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/apperr"
)

// Gateway is the slice of the platform API one engine needs.
// *platform.Resource[T] satisfies it; tests plug in fakes.
type Gateway[T model.ReviewRecord] interface {
	List(ctx context.Context, filters platform.ListFilters) ([]T, error)
	Approve(ctx context.Context, id int64, successStatus string) (T, error)
	Reject(ctx context.Context, id int64, reason, otherReason string) (T, error)
	UpdateRemarks(ctx context.Context, id int64, remarks string, tags []string) (T, error)
	Release(ctx context.Context, id int64, releaseDate, proofURL string) (T, error)
	UploadAttachment(ctx context.Context, id int64, filename string, file io.Reader) (string, error)
}

// AuditRecorder persists who actioned what. Failures to audit are
// logged, never surfaced to the reviewer.
type AuditRecorder interface {
	Record(ctx context.Context, actorID, action string, domain model.Domain, entityID int64, details map[string]any)
}

// Notifier pushes invalidation events to connected dashboards.
type Notifier interface {
	Invalidated(domain model.Domain)
}

// Config parametrizes the engine for one domain. This is the single
// generic engine replacing the per-domain near-duplicates: everything
// domain-specific lives in this table, not in code paths.
type Config[T model.ReviewRecord] struct {
	Domain model.Domain

	// SuccessStatus is written on approve ("Approved", "Open", "Completed").
	SuccessStatus string

	// PendingStatuses are the states approve/reject may start from.
	// Defaults to {Pending}.
	PendingStatuses []string

	// ReleaseFrom are the states release may start from. Empty means
	// the domain has no disbursement step.
	ReleaseFrom []string

	StatusMap stats.StatusMap
	Window    stats.Window
}

// Engine drives the review workflow for one domain: it owns the list
// store, enforces transition preconditions before any network call,
// and applies the close-selection-and-invalidate contract only after
// the platform confirms success.
type Engine[T model.ReviewRecord] struct {
	cfg    Config[T]
	gw     Gateway[T]
	store  *store.ListStore[T]
	audit  AuditRecorder
	notify Notifier
	log    zerolog.Logger
}

func NewEngine[T model.ReviewRecord](cfg Config[T], gw Gateway[T], audit AuditRecorder, notify Notifier, log zerolog.Logger) *Engine[T] {
	if len(cfg.PendingStatuses) == 0 {
		cfg.PendingStatuses = []string{model.StatusPending}
	}
	return &Engine[T]{
		cfg:    cfg,
		gw:     gw,
		store:  store.New[T](),
		audit:  audit,
		notify: notify,
		log:    log.With().Str("domain", string(cfg.Domain)).Logger(),
	}
}

func (e *Engine[T]) Domain() model.Domain {
	return e.cfg.Domain
}

func (e *Engine[T]) Store() *store.ListStore[T] {
	return e.store
}

// Refresh fetches the full collection into the canonical store. A
// list failure degrades to an empty collection instead of propagating:
// dashboards render "no data" rather than crashing. The error is still
// logged with its classification for operators.
func (e *Engine[T]) Refresh(ctx context.Context) []T {
	e.store.Replace(e.fetch(ctx, platform.ListFilters{}))
	return e.store.Records()
}

func (e *Engine[T]) fetch(ctx context.Context, filters platform.ListFilters) []T {
	records, err := e.gw.List(ctx, filters)
	if err != nil {
		e.log.Error().Err(err).Str("kind", string(apperr.KindOf(err))).Msg("list fetch failed, degrading to empty collection")
		records = []T{}
	}
	return records
}

// Records returns the current collection, refetching first when the
// store has been invalidated. Filtered requests go straight to the
// backend and never touch the canonical store: the store is shared
// across operators and backs the stats snapshot, which is defined over
// the full collection, so a filtered subset must not replace it.
func (e *Engine[T]) Records(ctx context.Context, filters platform.ListFilters) []T {
	if filters != (platform.ListFilters{}) {
		return e.fetch(ctx, filters)
	}
	if e.store.Stale() {
		return e.Refresh(ctx)
	}
	return e.store.Records()
}

// Snapshot derives the dashboard metrics for the current collection.
func (e *Engine[T]) Snapshot(ctx context.Context, now time.Time) stats.Snapshot {
	return stats.Aggregate(e.Records(ctx, platform.ListFilters{}), now, e.cfg.StatusMap, e.cfg.Window)
}

// Select opens a record in the detail view.
func (e *Engine[T]) Select(id int64) error {
	if !e.store.Select(id) {
		return apperr.Validation("record not found in current list")
	}
	return nil
}

// Deselect closes the detail view without actioning the record.
func (e *Engine[T]) Deselect() {
	e.store.ClearSelection()
}

func (e *Engine[T]) Selected() (T, bool) {
	return e.store.Selected()
}

func (e *Engine[T]) isPendingStatus(status string) bool {
	for _, s := range e.cfg.PendingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Approve transitions the selected record to the domain's success
// status. Valid only from a pending state. On success the selection is
// cleared and the list invalidated; on failure nothing local changes,
// so the reviewer can retry without re-opening the record.
func (e *Engine[T]) Approve(ctx context.Context, actorID string) (T, error) {
	var zero T

	rec, ok := e.store.Selected()
	if !ok {
		return zero, apperr.Validation("no record selected")
	}
	if !e.isPendingStatus(rec.RecordStatus()) {
		return zero, apperr.Validation("record is already " + rec.RecordStatus())
	}
	if !e.store.BeginAction(store.ActionApprove) {
		return zero, apperr.Validation("an approval is already in progress")
	}
	defer e.store.EndAction(store.ActionApprove)

	updated, err := e.gw.Approve(ctx, rec.RecordID(), e.cfg.SuccessStatus)
	if err != nil {
		return zero, err
	}

	e.completeMutation(ctx, actorID, model.ActionApproveRequest, rec.RecordID(), map[string]any{
		"status": e.cfg.SuccessStatus,
	})
	return updated, nil
}

// Reject transitions the selected record to Rejected. The reason
// precondition is enforced here: an empty reason, or "Other" without
// accompanying text, never produces a network call.
func (e *Engine[T]) Reject(ctx context.Context, actorID, reason, otherReason string) (T, error) {
	var zero T

	if reason == "" {
		return zero, apperr.Validation("a rejection reason is required")
	}
	if reason == model.ReasonOther && otherReason == "" {
		return zero, apperr.Validation("a free-text reason is required when rejecting with Other")
	}

	rec, ok := e.store.Selected()
	if !ok {
		return zero, apperr.Validation("no record selected")
	}
	if !e.isPendingStatus(rec.RecordStatus()) {
		return zero, apperr.Validation("record is already " + rec.RecordStatus())
	}
	if !e.store.BeginAction(store.ActionReject) {
		return zero, apperr.Validation("a rejection is already in progress")
	}
	defer e.store.EndAction(store.ActionReject)

	updated, err := e.gw.Reject(ctx, rec.RecordID(), reason, otherReason)
	if err != nil {
		return zero, err
	}

	e.completeMutation(ctx, actorID, model.ActionRejectRequest, rec.RecordID(), map[string]any{
		"reason":       reason,
		"other_reason": otherReason,
	})
	return updated, nil
}

// UpdateRemarks annotates the selected record. Valid in any status,
// never changes it, and keeps the detail view open so remarks editing
// stays iterative. The list is still invalidated so the next render
// picks up the annotation.
func (e *Engine[T]) UpdateRemarks(ctx context.Context, actorID, remarks string, tags []string) (T, error) {
	var zero T

	rec, ok := e.store.Selected()
	if !ok {
		return zero, apperr.Validation("no record selected")
	}
	if !e.store.BeginAction(store.ActionRemarks) {
		return zero, apperr.Validation("a remarks update is already in progress")
	}
	defer e.store.EndAction(store.ActionRemarks)

	updated, err := e.gw.UpdateRemarks(ctx, rec.RecordID(), remarks, tags)
	if err != nil {
		return zero, err
	}

	e.store.ReplaceSelected(updated)
	e.store.Invalidate()
	if e.audit != nil {
		e.audit.Record(ctx, actorID, model.ActionUpdateRemarks, e.cfg.Domain, rec.RecordID(), map[string]any{
			"remarks": remarks,
			"tags":    tags,
		})
	}
	return updated, nil
}

// Release finalizes a post-approval disbursement: uploads the
// evidentiary document, then calls the release endpoint with the
// resulting reference and the disbursement date. Valid only from the
// configured post-approval states; both the date and the file are
// required before any network call happens.
func (e *Engine[T]) Release(ctx context.Context, actorID, releaseDate, filename string, file io.Reader) (T, error) {
	var zero T

	if len(e.cfg.ReleaseFrom) == 0 {
		return zero, apperr.Validation("release is not supported for this domain")
	}
	if releaseDate == "" {
		return zero, apperr.Validation("a release date is required")
	}
	if file == nil {
		return zero, apperr.Validation("a proof document is required")
	}

	rec, ok := e.store.Selected()
	if !ok {
		return zero, apperr.Validation("no record selected")
	}
	releasable := false
	for _, s := range e.cfg.ReleaseFrom {
		if s == rec.RecordStatus() {
			releasable = true
			break
		}
	}
	if !releasable {
		return zero, apperr.Validation("record is not ready for release: " + rec.RecordStatus())
	}
	if !e.store.BeginAction(store.ActionRelease) {
		return zero, apperr.Validation("a release is already in progress")
	}
	defer e.store.EndAction(store.ActionRelease)

	proofURL, err := e.gw.UploadAttachment(ctx, rec.RecordID(), filename, file)
	if err != nil {
		return zero, err
	}

	updated, err := e.gw.Release(ctx, rec.RecordID(), releaseDate, proofURL)
	if err != nil {
		return zero, err
	}

	e.completeMutation(ctx, actorID, model.ActionReleaseRequest, rec.RecordID(), map[string]any{
		"release_date": releaseDate,
		"proof_url":    proofURL,
	})
	return updated, nil
}

// SupportsRelease reports whether the domain has a disbursement step.
func (e *Engine[T]) SupportsRelease() bool {
	return len(e.cfg.ReleaseFrom) > 0
}

// completeMutation applies the shared success contract for
// status-changing actions: close the detail view, mark the list stale,
// audit, and notify dashboards.
func (e *Engine[T]) completeMutation(ctx context.Context, actorID, action string, recordID int64, details map[string]any) {
	e.store.ClearSelection()
	e.store.Invalidate()
	if e.audit != nil {
		e.audit.Record(ctx, actorID, action, e.cfg.Domain, recordID, details)
	}
	if e.notify != nil {
		e.notify.Invalidated(e.cfg.Domain)
	}
	e.log.Info().Str("action", action).Int64("record_id", recordID).Msg("review action completed")
}
