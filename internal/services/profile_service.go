package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/saeid-a/NutriGuide/internal/models"
	"github.com/saeid-a/NutriGuide/internal/profile"
	"github.com/saeid-a/NutriGuide/internal/repository"
	"go.uber.org/zap"
)

var ErrProfileNotFound = errors.New("profile not found")

type UserProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*models.UserProfile, error)
	CreateEmpty(ctx context.Context, userID int64) error
	UpdatePartial(ctx context.Context, userID int64, req repository.UpdateUserProfileInput) (*models.UserProfile, error)
	UpdateSurveyProgress(ctx context.Context, userID int64, step int, completed *bool) (*models.UserProfile, error)
}

type ProfileCache interface {
	Get(ctx context.Context, userID int64) (*models.UserProfile, error)
	Set(ctx context.Context, userID int64, p *models.UserProfile) error
	Invalidate(ctx context.Context, userID int64) error
}

type ProfileService struct {
	userProfileRepo UserProfileStore
	cache           ProfileCache
	log             *zap.Logger
}

// NewProfileService wires the store with an optional cache; pass nil to
// disable caching.
func NewProfileService(userProfileRepo UserProfileStore, cache ProfileCache, log *zap.Logger) *ProfileService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileService{
		userProfileRepo: userProfileRepo,
		cache:           cache,
		log:             log,
	}
}

func (s *ProfileService) GetUserProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.log.Warn("profile cache read failed", zap.Int64("user_id", userID), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	p, err := s.userProfileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, p); err != nil {
			s.log.Warn("profile cache write failed", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	return p, nil
}

// UpdateUserProfile stores the non-nil fields of req, creating the row on
// first write. Enum fields are stored as canonical labels.
func (s *ProfileService) UpdateUserProfile(ctx context.Context, userID int64, req repository.UpdateUserProfileInput) (*models.UserProfile, error) {
	req.PhysicalActivityLevel = normalizeLabel(req.PhysicalActivityLevel, profile.NormalizeActivityLevel)
	req.CookingFrequency = normalizeLabel(req.CookingFrequency, profile.NormalizeCookingFrequency)

	if err := s.userProfileRepo.CreateEmpty(ctx, userID); err != nil {
		return nil, err
	}
	p, err := s.userProfileRepo.UpdatePartial(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return p, nil
}

func (s *ProfileService) UpdateSurveyProgress(ctx context.Context, userID int64, step int, completed *bool) (*models.UserProfile, error) {
	if err := s.userProfileRepo.CreateEmpty(ctx, userID); err != nil {
		return nil, err
	}
	p, err := s.userProfileRepo.UpdateSurveyProgress(ctx, userID, step, completed)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return p, nil
}

func (s *ProfileService) invalidate(ctx context.Context, userID int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.Error("profile cache invalidation failed", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func normalizeLabel(value *string, normalize func(string) string) *string {
	if value == nil {
		return nil
	}
	label := normalize(*value)
	return &label
}
