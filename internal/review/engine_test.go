package review

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/platform"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/stats"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/apperr"
)

// fakeGateway counts calls and replays canned results so tests can
// assert that preconditions short-circuit before any network call.
type fakeGateway struct {
	records []model.GoldConversion

	listErr    error
	approveErr error
	rejectErr  error
	releaseErr error
	uploadErr  error

	listCalls    int
	approveCalls int
	rejectCalls  int
	remarksCalls int
	releaseCalls int
	uploadCalls  int

	lastReason      string
	lastOtherReason string
	lastProofURL    string
}

func (f *fakeGateway) List(ctx context.Context, filters platform.ListFilters) ([]model.GoldConversion, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	if filters.Status == "" {
		return f.records, nil
	}
	var out []model.GoldConversion
	for _, r := range f.records {
		if r.Status == filters.Status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeGateway) Approve(ctx context.Context, id int64, successStatus string) (model.GoldConversion, error) {
	f.approveCalls++
	if f.approveErr != nil {
		return model.GoldConversion{}, f.approveErr
	}
	return model.GoldConversion{ID: id, Status: successStatus}, nil
}

func (f *fakeGateway) Reject(ctx context.Context, id int64, reason, otherReason string) (model.GoldConversion, error) {
	f.rejectCalls++
	f.lastReason = reason
	f.lastOtherReason = otherReason
	if f.rejectErr != nil {
		return model.GoldConversion{}, f.rejectErr
	}
	return model.GoldConversion{ID: id, Status: model.StatusRejected, RejectReason: reason}, nil
}

func (f *fakeGateway) UpdateRemarks(ctx context.Context, id int64, remarks string, tags []string) (model.GoldConversion, error) {
	f.remarksCalls++
	return model.GoldConversion{ID: id, Status: model.StatusPending, Remarks: remarks, RemarkTags: tags}, nil
}

func (f *fakeGateway) Release(ctx context.Context, id int64, releaseDate, proofURL string) (model.GoldConversion, error) {
	f.releaseCalls++
	f.lastProofURL = proofURL
	if f.releaseErr != nil {
		return model.GoldConversion{}, f.releaseErr
	}
	return model.GoldConversion{ID: id, Status: model.StatusReleased, ReleaseDate: releaseDate, ReleaseProofURL: proofURL}, nil
}

func (f *fakeGateway) UploadAttachment(ctx context.Context, id int64, filename string, file io.Reader) (string, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	return "https://cdn.example.com/proofs/" + filename, nil
}

type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(ctx context.Context, actorID, action string, domain model.Domain, entityID int64, details map[string]any) {
	f.actions = append(f.actions, action)
}

type fakeNotifier struct {
	domains []model.Domain
}

func (f *fakeNotifier) Invalidated(domain model.Domain) {
	f.domains = append(f.domains, domain)
}

func newTestEngine(gw *fakeGateway) (*Engine[model.GoldConversion], *fakeAudit, *fakeNotifier) {
	audit := &fakeAudit{}
	notify := &fakeNotifier{}
	eng := NewEngine(Config[model.GoldConversion]{
		Domain:        model.DomainGoldConversion,
		SuccessStatus: model.StatusApproved,
		ReleaseFrom:   []string{model.StatusApproved},
		StatusMap:     stats.GoldConversionStatusMap,
		Window:        stats.WindowMonthly6,
	}, gw, audit, notify, zerolog.Nop())
	return eng, audit, notify
}

func seededEngine(t *testing.T, gw *fakeGateway) (*Engine[model.GoldConversion], *fakeAudit, *fakeNotifier) {
	t.Helper()
	if gw.records == nil {
		gw.records = []model.GoldConversion{
			{ID: 1, Status: model.StatusPending, DateRequest: "2026-08-10"},
			{ID: 2, Status: model.StatusApproved, DateRequest: "2026-08-11"},
			{ID: 3, Status: model.StatusRejected, DateRequest: "2026-08-12"},
		}
	}
	eng, audit, notify := newTestEngine(gw)
	eng.Refresh(context.Background())
	return eng, audit, notify
}

func TestRefreshDegradesToEmptyOnFailure(t *testing.T) {
	gw := &fakeGateway{listErr: apperr.FromStatus(502, "upstream down")}
	eng, _, _ := newTestEngine(gw)

	records := eng.Refresh(context.Background())
	assert.Empty(t, records)
	assert.Equal(t, 1, gw.listCalls)

	// The empty collection is still usable downstream.
	snap := eng.Snapshot(context.Background(), time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, snap.Total)
}

func TestRecordsRefetchesOnlyWhenStale(t *testing.T) {
	gw := &fakeGateway{}
	eng, _, _ := seededEngine(t, gw)
	require.Equal(t, 1, gw.listCalls)

	eng.Records(context.Background(), platform.ListFilters{})
	assert.Equal(t, 1, gw.listCalls)

	eng.Store().Invalidate()
	eng.Records(context.Background(), platform.ListFilters{})
	assert.Equal(t, 2, gw.listCalls)

	// Server-side filters always go to the backend.
	eng.Records(context.Background(), platform.ListFilters{Status: model.StatusPending})
	assert.Equal(t, 3, gw.listCalls)
}

func TestFilteredListLeavesSnapshotIntact(t *testing.T) {
	gw := &fakeGateway{}
	eng, _, _ := seededEngine(t, gw)
	now := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	before := eng.Snapshot(context.Background(), now)
	require.Equal(t, 3, before.Total)

	// One operator narrows their list view to rejected records.
	filtered := eng.Records(context.Background(), platform.ListFilters{Status: model.StatusRejected})
	require.Len(t, filtered, 1)

	// The canonical collection backing everyone's stats is untouched:
	// the snapshot still covers all records, without a refetch.
	after := eng.Snapshot(context.Background(), now)
	assert.Equal(t, 3, after.Total)
	assert.Equal(t, 1, after.Rejected.Count)
	assert.Equal(t, 2, gw.listCalls)
}

func TestApproveHappyPath(t *testing.T) {
	gw := &fakeGateway{}
	eng, audit, notify := seededEngine(t, gw)
	require.NoError(t, eng.Select(1))

	updated, err := eng.Approve(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusApproved, updated.Status)
	assert.Equal(t, 1, gw.approveCalls)

	// Success closes the detail view, invalidates the list, audits and
	// notifies.
	_, selected := eng.Selected()
	assert.False(t, selected)
	assert.True(t, eng.Store().Stale())
	assert.Equal(t, []string{model.ActionApproveRequest}, audit.actions)
	assert.Equal(t, []model.Domain{model.DomainGoldConversion}, notify.domains)
}

func TestApprovePreconditions(t *testing.T) {
	gw := &fakeGateway{}
	eng, _, _ := seededEngine(t, gw)

	// No selection.
	_, err := eng.Approve(context.Background(), "admin-1")
	require.Error(t, err)

	// Already approved.
	require.NoError(t, eng.Select(2))
	_, err = eng.Approve(context.Background(), "admin-1")
	require.Error(t, err)

	// Already rejected.
	require.NoError(t, eng.Select(3))
	_, err = eng.Approve(context.Background(), "admin-1")
	require.Error(t, err)

	// None of the precondition failures reached the gateway.
	assert.Equal(t, 0, gw.approveCalls)
}

func TestApproveFailureKeepsSelection(t *testing.T) {
	gw := &fakeGateway{approveErr: apperr.FromStatus(500, "boom")}
	eng, audit, notify := seededEngine(t, gw)
	require.NoError(t, eng.Select(1))

	_, err := eng.Approve(context.Background(), "admin-1")
	require.Error(t, err)
	assert.Equal(t, apperr.KindServer, apperr.KindOf(err))

	// Nothing local changed: the reviewer can retry without re-opening.
	rec, selected := eng.Selected()
	require.True(t, selected)
	assert.Equal(t, int64(1), rec.ID)
	assert.False(t, eng.Store().Stale())
	assert.Empty(t, audit.actions)
	assert.Empty(t, notify.domains)

	// Retry succeeds once the backend recovers.
	gw.approveErr = nil
	_, err = eng.Approve(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 2, gw.approveCalls)
}

func TestRejectRequiresReason(t *testing.T) {
	gw := &fakeGateway{}
	eng, _, _ := seededEngine(t, gw)
	require.NoError(t, eng.Select(1))

	_, err := eng.Reject(context.Background(), "admin-1", "", "")
	require.Error(t, err)

	_, err = eng.Reject(context.Background(), "admin-1", model.ReasonOther, "")
	require.Error(t, err)

	assert.Equal(t, 0, gw.rejectCalls)

	_, err = eng.Reject(context.Background(), "admin-1", model.ReasonOther, "document illegible")
	require.NoError(t, err)
	assert.Equal(t, model.ReasonOther, gw.lastReason)
	assert.Equal(t, "document illegible", gw.lastOtherReason)
}

func TestUpdateRemarksKeepsSelectionOpen(t *testing.T) {
	gw := &fakeGateway{}
	eng, audit, notify := seededEngine(t, gw)

	// Remarks work in any status, including terminal ones.
	require.NoError(t, eng.Select(3))

	updated, err := eng.UpdateRemarks(context.Background(), "admin-1", "second look requested", []string{"Flagged"})
	require.NoError(t, err)
	assert.Equal(t, "second look requested", updated.Remarks)

	rec, selected := eng.Selected()
	require.True(t, selected)
	assert.Equal(t, "second look requested", rec.Remarks)

	// List still invalidated so the next render shows the annotation,
	// but no dashboard push for a non-status change.
	assert.True(t, eng.Store().Stale())
	assert.Equal(t, []string{model.ActionUpdateRemarks}, audit.actions)
	assert.Empty(t, notify.domains)
}

func TestReleaseValidation(t *testing.T) {
	gw := &fakeGateway{}
	eng, _, _ := seededEngine(t, gw)

	file := strings.NewReader("proof-bytes")

	// No selection yet.
	_, err := eng.Release(context.Background(), "admin-1", "2026-08-28", "proof.png", file)
	require.Error(t, err)

	require.NoError(t, eng.Select(2))

	_, err = eng.Release(context.Background(), "admin-1", "", "proof.png", file)
	require.Error(t, err)

	_, err = eng.Release(context.Background(), "admin-1", "2026-08-28", "proof.png", nil)
	require.Error(t, err)

	// Pending records are not releasable.
	require.NoError(t, eng.Select(1))
	_, err = eng.Release(context.Background(), "admin-1", "2026-08-28", "proof.png", file)
	require.Error(t, err)

	assert.Equal(t, 0, gw.uploadCalls)
	assert.Equal(t, 0, gw.releaseCalls)
}

func TestReleaseUploadsThenReleases(t *testing.T) {
	gw := &fakeGateway{}
	eng, audit, _ := seededEngine(t, gw)
	require.NoError(t, eng.Select(2))

	updated, err := eng.Release(context.Background(), "admin-1", "2026-08-28", "proof.png", strings.NewReader("proof-bytes"))
	require.NoError(t, err)

	assert.Equal(t, 1, gw.uploadCalls)
	assert.Equal(t, 1, gw.releaseCalls)
	assert.Equal(t, "https://cdn.example.com/proofs/proof.png", gw.lastProofURL)
	assert.Equal(t, model.StatusReleased, updated.Status)
	assert.Equal(t, []string{model.ActionReleaseRequest}, audit.actions)

	_, selected := eng.Selected()
	assert.False(t, selected)
}

func TestReleaseUploadFailureStopsEarly(t *testing.T) {
	gw := &fakeGateway{uploadErr: errors.New("storage unavailable")}
	eng, _, _ := seededEngine(t, gw)
	require.NoError(t, eng.Select(2))

	_, err := eng.Release(context.Background(), "admin-1", "2026-08-28", "proof.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 1, gw.uploadCalls)
	assert.Equal(t, 0, gw.releaseCalls)

	_, selected := eng.Selected()
	assert.True(t, selected)
}

func TestReleaseUnsupportedDomain(t *testing.T) {
	audit := &fakeAudit{}
	gw := &fakeGateway{records: []model.GoldConversion{{ID: 1, Status: model.StatusApproved}}}
	eng := NewEngine(Config[model.GoldConversion]{
		Domain:        model.DomainBuyRequest,
		SuccessStatus: model.StatusCompleted,
		StatusMap:     stats.BuyStatusMap,
		Window:        stats.WindowMonthly6,
	}, gw, audit, &fakeNotifier{}, zerolog.Nop())
	eng.Refresh(context.Background())
	require.NoError(t, eng.Select(1))

	assert.False(t, eng.SupportsRelease())
	_, err := eng.Release(context.Background(), "admin-1", "2026-08-28", "proof.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, 0, gw.uploadCalls)
}

func TestFacadeRoutesToEngine(t *testing.T) {
	gw := &fakeGateway{}
	eng, _, _ := seededEngine(t, gw)
	f := eng.Facade()

	assert.Equal(t, model.DomainGoldConversion, f.Domain())
	assert.True(t, f.SupportsRelease())

	require.NoError(t, f.Select(1))
	rec, ok := f.SelectedRecord()
	require.True(t, ok)
	conv, isConv := rec.(model.GoldConversion)
	require.True(t, isConv)
	assert.Equal(t, int64(1), conv.ID)

	_, err := f.ApproveSelected(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 1, gw.approveCalls)
}
