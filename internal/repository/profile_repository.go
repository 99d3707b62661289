package repository

import (
	"context"
	"encoding/json"

	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/domain"
)

// UserProfileRepository defines persistence access for user profiles.
type UserProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	Insert(ctx context.Context, profile *domain.UserProfile) error
	Save(ctx context.Context, profile *domain.UserProfile) error
	Delete(ctx context.Context, userID string) error
}

type userProfileRepository struct {
	store docstore.Store
}

// NewUserProfileRepository returns a document-store backed implementation.
func NewUserProfileRepository(store docstore.Store) UserProfileRepository {
	return &userProfileRepository{store: store}
}

func (r *userProfileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	doc, err := r.store.Get(ctx, collectionProfiles, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userProfileRepository) Insert(ctx context.Context, profile *domain.UserProfile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return translateStoreErr(r.store.Insert(ctx, collectionProfiles, profile.UserID, doc))
}

func (r *userProfileRepository) Save(ctx context.Context, profile *domain.UserProfile) error {
	doc, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return translateStoreErr(r.store.Save(ctx, collectionProfiles, profile.UserID, doc))
}

func (r *userProfileRepository) Delete(ctx context.Context, userID string) error {
	return translateStoreErr(r.store.Delete(ctx, collectionProfiles, userID))
}
