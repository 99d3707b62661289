package repository

import (
	"context"
	"encoding/json"

	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/domain"
)

// UserNewsRepository defines persistence access for per-user news
// aggregates. One document per user id; mutations replace the whole
// document, so callers serialize read-modify-write per user.
type UserNewsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.UserNews, error)
	Insert(ctx context.Context, aggregate *domain.UserNews) error
	Save(ctx context.Context, aggregate *domain.UserNews) error
	Delete(ctx context.Context, userID string) error
}

type userNewsRepository struct {
	store docstore.Store
}

// NewUserNewsRepository returns a document-store backed implementation.
func NewUserNewsRepository(store docstore.Store) UserNewsRepository {
	return &userNewsRepository{store: store}
}

func (r *userNewsRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserNews, error) {
	doc, err := r.store.Get(ctx, collectionUserNews, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	var aggregate domain.UserNews
	if err := json.Unmarshal(doc, &aggregate); err != nil {
		return nil, err
	}
	return &aggregate, nil
}

func (r *userNewsRepository) Insert(ctx context.Context, aggregate *domain.UserNews) error {
	doc, err := json.Marshal(aggregate)
	if err != nil {
		return err
	}
	return translateStoreErr(r.store.Insert(ctx, collectionUserNews, aggregate.UserID, doc))
}

func (r *userNewsRepository) Save(ctx context.Context, aggregate *domain.UserNews) error {
	doc, err := json.Marshal(aggregate)
	if err != nil {
		return err
	}
	return translateStoreErr(r.store.Save(ctx, collectionUserNews, aggregate.UserID, doc))
}

func (r *userNewsRepository) Delete(ctx context.Context, userID string) error {
	return translateStoreErr(r.store.Delete(ctx, collectionUserNews, userID))
}
