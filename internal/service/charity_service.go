package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/platform"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/store"
	"github.com/MTrazona/aurum-platform-admin-sub000/pkg/apperr"
)

// CharityService manages donation campaigns. Unlike the review
// domains, deletion is a direct platform call followed by immediate
// local removal, so no refetch cycle is needed.
type CharityService interface {
	List(ctx context.Context, filters platform.ListFilters) []model.Charity
	Delete(ctx context.Context, actorID string, id int64) error
}

type charityService struct {
	gw    *platform.Charities
	store *store.ListStore[model.Charity]
	audit AuditService
	log   zerolog.Logger
}

func NewCharityService(gw *platform.Charities, audit AuditService, log zerolog.Logger) CharityService {
	return &charityService{
		gw:    gw,
		store: store.New[model.Charity](),
		audit: audit,
		log:   log.With().Str("component", "charities").Logger(),
	}
}

// List fetches campaigns, degrading to an empty collection on failure
// like every other list in the dashboard. Filtered requests bypass the
// canonical store so a filtered subset never replaces the full
// collection other operators see.
func (s *charityService) List(ctx context.Context, filters platform.ListFilters) []model.Charity {
	if filters != (platform.ListFilters{}) {
		return s.fetch(ctx, filters)
	}
	if s.store.Stale() {
		s.store.Replace(s.fetch(ctx, platform.ListFilters{}))
	}
	return s.store.Records()
}

func (s *charityService) fetch(ctx context.Context, filters platform.ListFilters) []model.Charity {
	charities, err := s.gw.List(ctx, filters)
	if err != nil {
		s.log.Error().Err(err).Str("kind", string(apperr.KindOf(err))).Msg("charity list fetch failed, degrading to empty collection")
		charities = []model.Charity{}
	}
	return charities
}

// Delete removes the campaign on the platform, then drops it locally
// on success. A single-flight guard prevents double-submit.
func (s *charityService) Delete(ctx context.Context, actorID string, id int64) error {
	if !s.store.BeginAction(store.ActionDelete) {
		return apperr.Validation("a delete is already in progress")
	}
	defer s.store.EndAction(store.ActionDelete)

	if err := s.gw.Delete(ctx, id); err != nil {
		return err
	}

	s.store.Remove(id)
	s.audit.Record(ctx, actorID, model.ActionDeleteCharity, model.DomainCharity, id, nil)
	return nil
}
