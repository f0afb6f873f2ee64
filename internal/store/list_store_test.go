package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
)

func seeded() *ListStore[model.BankVerification] {
	s := New[model.BankVerification]()
	s.Replace([]model.BankVerification{
		{ID: 1, StatusOfVerification: model.StatusPending},
		{ID: 2, StatusOfVerification: model.StatusApproved},
		{ID: 3, StatusOfVerification: model.StatusPending},
	})
	return s
}

func TestNewStoreStartsStale(t *testing.T) {
	s := New[model.BankVerification]()
	assert.True(t, s.Stale())
	assert.Empty(t, s.Records())

	s.Replace(nil)
	assert.False(t, s.Stale())
}

func TestReplaceAndInvalidate(t *testing.T) {
	s := seeded()
	assert.False(t, s.Stale())
	assert.Len(t, s.Records(), 3)

	s.Invalidate()
	assert.True(t, s.Stale())

	// Records survive invalidation; staleness only drives refetching.
	assert.Len(t, s.Records(), 3)
}

func TestSelect(t *testing.T) {
	s := seeded()

	assert.False(t, s.Select(99))
	_, ok := s.Selected()
	assert.False(t, ok)

	require.True(t, s.Select(2))
	rec, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(2), rec.ID)

	// Selecting another record replaces the previous selection.
	require.True(t, s.Select(3))
	rec, ok = s.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(3), rec.ID)

	s.ClearSelection()
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestReplaceSelected(t *testing.T) {
	s := seeded()
	require.True(t, s.Select(1))

	s.ReplaceSelected(model.BankVerification{ID: 1, StatusOfVerification: model.StatusPending, Remarks: "checked"})
	rec, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "checked", rec.Remarks)

	// A mismatched id must not clobber the open record.
	s.ReplaceSelected(model.BankVerification{ID: 2, Remarks: "other"})
	rec, _ = s.Selected()
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, "checked", rec.Remarks)
}

func TestRemove(t *testing.T) {
	s := seeded()
	require.True(t, s.Select(2))

	s.Remove(2)
	assert.Len(t, s.Records(), 2)
	_, ok := s.Selected()
	assert.False(t, ok)

	// Removing an absent id is a no-op.
	s.Remove(99)
	assert.Len(t, s.Records(), 2)
}

func TestRecordsReturnsCopy(t *testing.T) {
	s := seeded()
	out := s.Records()
	out[0].StatusOfVerification = model.StatusRejected

	fresh := s.Records()
	assert.Equal(t, model.StatusPending, fresh[0].StatusOfVerification)
}

func TestSingleFlightPerActionKind(t *testing.T) {
	s := seeded()

	require.True(t, s.BeginAction(ActionApprove))
	assert.True(t, s.Pending(ActionApprove))

	// Same kind blocked, other kinds independent.
	assert.False(t, s.BeginAction(ActionApprove))
	assert.True(t, s.BeginAction(ActionReject))

	s.EndAction(ActionApprove)
	assert.False(t, s.Pending(ActionApprove))
	assert.True(t, s.BeginAction(ActionApprove))
}
