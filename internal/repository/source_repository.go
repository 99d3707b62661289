package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/domain"
)

// NewsSourceRepository defines persistence access for news sources.
// Sources are flat documents keyed by their numeric id; FindByCreator is
// a secondary lookup on the createdBy attribute.
type NewsSourceRepository interface {
	GetByID(ctx context.Context, id int) (*domain.NewsSource, error)
	Insert(ctx context.Context, source *domain.NewsSource) error
	Save(ctx context.Context, source *domain.NewsSource) error
	Delete(ctx context.Context, id int) error
	FindByCreator(ctx context.Context, createdBy string) ([]domain.NewsSource, error)
}

type newsSourceRepository struct {
	store docstore.Store
}

// NewNewsSourceRepository returns a document-store backed implementation.
func NewNewsSourceRepository(store docstore.Store) NewsSourceRepository {
	return &newsSourceRepository{store: store}
}

func sourceKey(id int) string {
	return strconv.Itoa(id)
}

func (r *newsSourceRepository) GetByID(ctx context.Context, id int) (*domain.NewsSource, error) {
	doc, err := r.store.Get(ctx, collectionNewsSources, sourceKey(id))
	if err != nil {
		return nil, translateStoreErr(err)
	}
	var source domain.NewsSource
	if err := json.Unmarshal(doc, &source); err != nil {
		return nil, err
	}
	return &source, nil
}

func (r *newsSourceRepository) Insert(ctx context.Context, source *domain.NewsSource) error {
	doc, err := json.Marshal(source)
	if err != nil {
		return err
	}
	return translateStoreErr(r.store.Insert(ctx, collectionNewsSources, sourceKey(source.ID), doc))
}

func (r *newsSourceRepository) Save(ctx context.Context, source *domain.NewsSource) error {
	doc, err := json.Marshal(source)
	if err != nil {
		return err
	}
	return translateStoreErr(r.store.Save(ctx, collectionNewsSources, sourceKey(source.ID), doc))
}

func (r *newsSourceRepository) Delete(ctx context.Context, id int) error {
	return translateStoreErr(r.store.Delete(ctx, collectionNewsSources, sourceKey(id)))
}

func (r *newsSourceRepository) FindByCreator(ctx context.Context, createdBy string) ([]domain.NewsSource, error) {
	docs, err := r.store.FindByField(ctx, collectionNewsSources, "createdBy", createdBy)
	if err != nil {
		return nil, translateStoreErr(err)
	}

	sources := make([]domain.NewsSource, 0, len(docs))
	for _, doc := range docs {
		var source domain.NewsSource
		if err := json.Unmarshal(doc, &source); err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}
