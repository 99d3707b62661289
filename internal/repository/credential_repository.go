package repository

import (
	"context"
	"encoding/json"

	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/domain"
)

// CredentialRepository defines persistence access for credentials.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.Credential) error
	GetByUserID(ctx context.Context, userID string) (*domain.Credential, error)
	Exists(ctx context.Context, userID string) (bool, error)
}

type credentialRepository struct {
	store docstore.Store
}

// NewCredentialRepository returns a document-store backed implementation.
func NewCredentialRepository(store docstore.Store) CredentialRepository {
	return &credentialRepository{store: store}
}

func (r *credentialRepository) Create(ctx context.Context, cred *domain.Credential) error {
	doc, err := json.Marshal(cred)
	if err != nil {
		return err
	}
	return translateStoreErr(r.store.Insert(ctx, collectionCredentials, cred.UserID, doc))
}

func (r *credentialRepository) GetByUserID(ctx context.Context, userID string) (*domain.Credential, error) {
	doc, err := r.store.Get(ctx, collectionCredentials, userID)
	if err != nil {
		return nil, translateStoreErr(err)
	}
	var cred domain.Credential
	if err := json.Unmarshal(doc, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepository) Exists(ctx context.Context, userID string) (bool, error) {
	exists, err := r.store.Exists(ctx, collectionCredentials, userID)
	if err != nil {
		return false, translateStoreErr(err)
	}
	return exists, nil
}
