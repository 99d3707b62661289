package repository

import (
	"errors"
	"fmt"

	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/domain"
)

// Collection names in the document store.
const (
	collectionCredentials = "credentials"
	collectionUserNews    = "usernews"
	collectionNewsSources = "newssources"
	collectionProfiles    = "userprofiles"
)

// translateStoreErr maps docstore sentinels onto the domain taxonomy.
// Infrastructure failures stay distinguishable from key misses.
func translateStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, docstore.ErrKeyNotFound):
		return domain.ErrNotFound
	case errors.Is(err, docstore.ErrKeyExists):
		return domain.ErrConflict
	case errors.Is(err, docstore.ErrUnavailable):
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	default:
		return err
	}
}
