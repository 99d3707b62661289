package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists documents in a single JSONB table
// (see migrations/001_create_documents.sql). FindByField is pushed down
// to a JSONB attribute comparison.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a Postgres-backed implementation.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Get(ctx context.Context, collection, key string) ([]byte, error) {
	const query = `SELECT data FROM documents WHERE collection=$1 AND key=$2`

	var doc []byte
	if err := s.pool.QueryRow(ctx, query, collection, key).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, unavailable(err)
	}
	return doc, nil
}

func (s *PostgresStore) Exists(ctx context.Context, collection, key string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM documents WHERE collection=$1 AND key=$2)`

	var exists bool
	if err := s.pool.QueryRow(ctx, query, collection, key).Scan(&exists); err != nil {
		return false, unavailable(err)
	}
	return exists, nil
}

func (s *PostgresStore) Insert(ctx context.Context, collection, key string, doc []byte) error {
	const query = `
        INSERT INTO documents (collection, key, data)
        VALUES ($1, $2, $3)
        ON CONFLICT (collection, key) DO NOTHING`

	cmd, err := s.pool.Exec(ctx, query, collection, key, doc)
	if err != nil {
		return unavailable(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrKeyExists
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, collection, key string, doc []byte) error {
	const query = `
        INSERT INTO documents (collection, key, data)
        VALUES ($1, $2, $3)
        ON CONFLICT (collection, key) DO UPDATE SET data=EXCLUDED.data, updated_at=NOW()`

	if _, err := s.pool.Exec(ctx, query, collection, key, doc); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, collection, key string) error {
	const query = `DELETE FROM documents WHERE collection=$1 AND key=$2`

	cmd, err := s.pool.Exec(ctx, query, collection, key)
	if err != nil {
		return unavailable(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrKeyNotFound
	}
	return nil
}

func (s *PostgresStore) FindByField(ctx context.Context, collection, field, value string) ([][]byte, error) {
	const query = `SELECT data FROM documents WHERE collection=$1 AND data->>$2 = $3`

	rows, err := s.pool.Query(ctx, query, collection, field, value)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	results := make([][]byte, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, unavailable(err)
		}
		results = append(results, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return results, nil
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
