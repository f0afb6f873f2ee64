package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/platform"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/repository"
)

type recordingAudit struct {
	actions []string
}

func (r *recordingAudit) Record(ctx context.Context, actorID, action string, domain model.Domain, entityID int64, details map[string]any) {
	r.actions = append(r.actions, action)
}

func (r *recordingAudit) GetAuditLogs(ctx context.Context, filter repository.AuditFilter) ([]AuditLogResponse, int64, error) {
	return nil, 0, nil
}

func newCharityTestService(t *testing.T) (CharityService, *recordingAudit, *int) {
	t.Helper()
	campaigns := []model.Charity{
		{ID: 1, Name: "Clean Water Fund", Active: true},
		{ID: 2, Name: "School Meals", Active: true},
		{ID: 3, Name: "Water Well Project", Active: false},
	}

	listCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		listCalls++
		out := campaigns
		if search := r.URL.Query().Get("search"); search != "" {
			out = nil
			for _, c := range campaigns {
				if strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
					out = append(out, c)
				}
			}
		}
		json.NewEncoder(w).Encode(out)
	}))
	t.Cleanup(srv.Close)

	client := platform.NewClient(srv.URL, 5*time.Second, nil, zerolog.Nop())
	audit := &recordingAudit{}
	return NewCharityService(platform.NewCharities(client), audit, zerolog.Nop()), audit, &listCalls
}

func TestCharityListCachesUntilStale(t *testing.T) {
	svc, _, listCalls := newCharityTestService(t)

	charities := svc.List(context.Background(), platform.ListFilters{})
	require.Len(t, charities, 3)
	assert.Equal(t, 1, *listCalls)

	// Second unfiltered read serves the cached collection.
	svc.List(context.Background(), platform.ListFilters{})
	assert.Equal(t, 1, *listCalls)
}

func TestCharityFilteredListBypassesCache(t *testing.T) {
	svc, _, listCalls := newCharityTestService(t)

	full := svc.List(context.Background(), platform.ListFilters{})
	require.Len(t, full, 3)

	filtered := svc.List(context.Background(), platform.ListFilters{Search: "water"})
	require.Len(t, filtered, 2)
	assert.Equal(t, 2, *listCalls)

	// The filtered subset never replaced the canonical collection: the
	// next unfiltered read still serves all campaigns from the cache.
	again := svc.List(context.Background(), platform.ListFilters{})
	assert.Len(t, again, 3)
	assert.Equal(t, 2, *listCalls)
}

func TestCharityDeleteRemovesLocally(t *testing.T) {
	svc, audit, listCalls := newCharityTestService(t)

	require.Len(t, svc.List(context.Background(), platform.ListFilters{}), 3)

	require.NoError(t, svc.Delete(context.Background(), "admin-1", 2))
	assert.Equal(t, []string{model.ActionDeleteCharity}, audit.actions)

	// Removal is local; no refetch happens.
	remaining := svc.List(context.Background(), platform.ListFilters{})
	assert.Len(t, remaining, 2)
	assert.Equal(t, 1, *listCalls)
	for _, c := range remaining {
		assert.NotEqual(t, int64(2), c.ID)
	}
}
