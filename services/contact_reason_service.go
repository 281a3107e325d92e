package services

import (
	"context"
	"fmt"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/models"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/contentcache"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"
	"github.com/bumbaRasch/medical-practice-site-sub000/repositories"

	"go.uber.org/zap"
)

// ReasonOption is one entry of the form's reason selector.
type ReasonOption struct {
	ID   uint
	Name string
}

// IContactReasonService provides the reason selector options.
type IContactReasonService interface {
	ActiveReasons(ctx context.Context) ([]models.ContactReason, error)
	ReasonOptions(ctx context.Context, loc i18n.Locale) ([]ReasonOption, error)
	InvalidateOptions()
}

// ContactReasonService implements IContactReasonService with a read-through
// cache in front of the reference table.
type ContactReasonService struct {
	repo  repositories.IContactReasonRepository
	cache *contentcache.Cache
}

// NewContactReasonService wires the service with the shared DB connection.
func NewContactReasonService() IContactReasonService {
	return &ContactReasonService{
		repo:  repositories.NewContactReasonRepository(configs.GetDB()),
		cache: contentcache.New(contentcache.DefaultTTL),
	}
}

// NewContactReasonServiceWithDeps wires explicit collaborators (tests).
func NewContactReasonServiceWithDeps(repo repositories.IContactReasonRepository, cache *contentcache.Cache) *ContactReasonService {
	if cache == nil {
		cache = contentcache.New(contentcache.DefaultTTL)
	}
	return &ContactReasonService{repo: repo, cache: cache}
}

// ActiveReasons returns the active reasons in display order (uncached; used
// where fresh data matters).
func (s *ContactReasonService) ActiveReasons(ctx context.Context) ([]models.ContactReason, error) {
	return s.repo.FindActiveOrdered(ctx)
}

// ReasonOptions returns the localized selector entries, cached for the
// content TTL.
func (s *ContactReasonService) ReasonOptions(ctx context.Context, loc i18n.Locale) ([]ReasonOption, error) {
	key := contentcache.Key("reasons", string(loc), "options")
	value, err := s.cache.Remember(key, func() (any, error) {
		reasons, err := s.repo.FindActiveOrdered(ctx)
		if err != nil {
			return nil, err
		}
		options := make([]ReasonOption, 0, len(reasons))
		for _, reason := range reasons {
			options = append(options, ReasonOption{ID: reason.ID, Name: reason.LocalizedName(loc)})
		}
		return options, nil
	})
	if err != nil {
		configslog.Log.Error("ReasonOptions: failed to load contact reasons", zap.String("locale", string(loc)), zap.Error(err))
		return nil, fmt.Errorf("failed to load contact reasons: %w", err)
	}
	options, ok := value.([]ReasonOption)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value for %s", key)
	}
	return options, nil
}

// InvalidateOptions drops the cached selector entries for all locales.
// Called after administrative changes to the reference table.
func (s *ContactReasonService) InvalidateOptions() {
	for _, loc := range i18n.SupportedLocales {
		s.cache.Invalidate(contentcache.Key("reasons", string(loc), "options"))
	}
}

var _ IContactReasonService = (*ContactReasonService)(nil)
