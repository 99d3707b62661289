package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/events"
	"github.com/spec-kit/news-service/internal/repository"
)

func newTestSourceService() *SourceService {
	repo := repository.NewNewsSourceRepository(docstore.NewMemoryStore())
	return NewSourceService(repo, events.NewInMemoryDispatcher())
}

func source(id int, name, createdBy string) domain.NewsSource {
	return domain.NewsSource{ID: id, Name: name, Description: "desc", CreatedBy: createdBy}
}

func TestSourceCreate_SetsCreationDateServerSide(t *testing.T) {
	svc := newTestSourceService()

	input := source(1, "reuters", "john")
	input.CreatedAt = time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(context.Background(), input)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), created.CreatedAt, 2*time.Second)
}

func TestSourceCreate_DuplicateID(t *testing.T) {
	svc := newTestSourceService()
	ctx := context.Background()

	_, err := svc.Create(ctx, source(1, "reuters", "john"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, source(1, "apnews", "jane"))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSourceGetByID(t *testing.T) {
	svc := newTestSourceService()
	ctx := context.Background()

	_, err := svc.Create(ctx, source(1, "reuters", "john"))
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "reuters", got.Name)

	_, err = svc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSourceUpdate_PreservesCreationDate(t *testing.T) {
	svc := newTestSourceService()
	ctx := context.Background()

	created, err := svc.Create(ctx, source(1, "reuters", "john"))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, 1, source(1, "reuters-renamed", "jane"))
	require.NoError(t, err)
	assert.Equal(t, "reuters-renamed", updated.Name)
	assert.Equal(t, "jane", updated.CreatedBy)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())

	_, err = svc.Update(ctx, 99, source(99, "x", "y"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSourceDelete(t *testing.T) {
	svc := newTestSourceService()
	ctx := context.Background()

	_, err := svc.Create(ctx, source(1, "reuters", "john"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1))
	_, err = svc.GetByID(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 1), domain.ErrNotFound)
}

func TestListByCreator(t *testing.T) {
	svc := newTestSourceService()
	ctx := context.Background()

	_, err := svc.Create(ctx, source(1, "reuters", "john"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, source(2, "apnews", "jane"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, source(3, "bbc", "john"))
	require.NoError(t, err)

	johns, err := svc.ListByCreator(ctx, "john")
	require.NoError(t, err)
	assert.Len(t, johns, 2)
	for _, s := range johns {
		assert.Equal(t, "john", s.CreatedBy)
	}
}

func TestListByCreator_NoMatchesIsEmptyNotError(t *testing.T) {
	svc := newTestSourceService()

	sources, err := svc.ListByCreator(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, sources)
	assert.Empty(t, sources)
}
