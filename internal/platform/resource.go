package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
)

// ListFilters are the optional server-side filters supported by every
// list endpoint. Zero values are omitted from the query string.
type ListFilters struct {
	Search   string
	Status   string
	Category string
	Country  string
}

func (f ListFilters) query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Country != "" {
		q.Set("country", f.Country)
	}
	return q
}

// Resource is a typed gateway to one reviewable collection on the
// platform core. One instance exists per domain; all of them share the
// underlying Client.
type Resource[T model.ReviewRecord] struct {
	client *Client
	domain model.Domain
}

func NewResource[T model.ReviewRecord](client *Client, domain model.Domain) *Resource[T] {
	return &Resource[T]{client: client, domain: domain}
}

func (r *Resource[T]) Domain() model.Domain {
	return r.domain
}

func (r *Resource[T]) basePath() string {
	return "/" + string(r.domain)
}

func (r *Resource[T]) recordPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.basePath(), id)
}

// List fetches the collection with optional server-side filters.
// Errors propagate classified; the degrade-to-empty policy for list
// failures lives in the review engine, not here.
func (r *Resource[T]) List(ctx context.Context, filters ListFilters) ([]T, error) {
	var records []T
	if err := r.client.getJSON(ctx, r.basePath(), filters.query(), &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches a single record.
func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var record T
	if err := r.client.getJSON(ctx, r.recordPath(id), nil, &record); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Approve transitions the record to the domain's success status. The
// caller is responsible for ensuring the record is currently pending.
func (r *Resource[T]) Approve(ctx context.Context, id int64, successStatus string) (T, error) {
	payload := map[string]string{"status": successStatus}
	var record T
	if err := r.client.sendJSON(ctx, http.MethodPut, r.recordPath(id), payload, &record); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Reject transitions the record to Rejected with the given reason.
// Reason validation (non-empty, Other requires text) happens in the
// review engine before this is ever called.
func (r *Resource[T]) Reject(ctx context.Context, id int64, reason, otherReason string) (T, error) {
	payload := map[string]string{
		"status":         model.StatusRejected,
		"rejectedReason": reason,
	}
	if otherReason != "" {
		payload["rejectedReasonOptional"] = otherReason
	}
	var record T
	if err := r.client.sendJSON(ctx, http.MethodPut, r.recordPath(id), payload, &record); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// UpdateRemarks updates the free-text annotation and its tags. Allowed
// in any status and independent of the review lifecycle.
func (r *Resource[T]) UpdateRemarks(ctx context.Context, id int64, remarks string, tags []string) (T, error) {
	payload := map[string]any{
		"remarks":    remarks,
		"remarkTags": tags,
	}
	var record T
	if err := r.client.sendJSON(ctx, http.MethodPatch, r.recordPath(id)+"/remarks", payload, &record); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// Release finalizes a post-approval disbursement (gold conversions)
// with the disbursement date and the uploaded proof reference.
func (r *Resource[T]) Release(ctx context.Context, id int64, releaseDate, proofURL string) (T, error) {
	payload := map[string]string{
		"status":          model.StatusReleased,
		"releaseDate":     releaseDate,
		"releaseProofUrl": proofURL,
	}
	var record T
	if err := r.client.sendJSON(ctx, http.MethodPut, r.recordPath(id)+"/release", payload, &record); err != nil {
		var zero T
		return zero, err
	}
	return record, nil
}

// UploadAttachment stores an evidentiary document for the record and
// returns its URL.
func (r *Resource[T]) UploadAttachment(ctx context.Context, id int64, filename string, file io.Reader) (string, error) {
	return r.client.Upload(ctx, r.recordPath(id)+"/image", "image", filename, file)
}
