package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/repository"
)

// ProfileService manages user profiles.
type ProfileService struct {
	profiles repository.UserProfileRepository
}

// NewProfileService constructs the service.
func NewProfileService(profiles repository.UserProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Register stores a new profile; the user id must be unused.
func (s *ProfileService) Register(ctx context.Context, profile domain.UserProfile) (*domain.UserProfile, error) {
	profile.CreatedAt = time.Now()

	if err := s.profiles.Insert(ctx, &profile); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("profile %q: %w", profile.UserID, domain.ErrUserExists)
		}
		return nil, err
	}
	return &profile, nil
}

// Get returns the profile for the given user id.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", userID, err)
	}
	return profile, nil
}

// Update replaces the mutable fields of an existing profile.
func (s *ProfileService) Update(ctx context.Context, userID string, update domain.UserProfile) (*domain.UserProfile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile %q: %w", userID, err)
	}

	profile.FirstName = update.FirstName
	profile.LastName = update.LastName
	profile.Contact = update.Contact
	profile.Email = update.Email

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Delete removes the profile for the given user id.
func (s *ProfileService) Delete(ctx context.Context, userID string) error {
	if err := s.profiles.Delete(ctx, userID); err != nil {
		return fmt.Errorf("profile %q: %w", userID, err)
	}
	return nil
}
