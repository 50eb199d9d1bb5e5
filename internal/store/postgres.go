package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/InventarioBot_Go/internal/domain"
	"github.com/osse101/InventarioBot_Go/internal/logger"
)

// DB is the subset of *pgxpool.Pool used by PostgresStore
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// PostgresStore keeps the document as one JSONB row of inventory_documents,
// keyed by document name so several deployments can share a database.
type PostgresStore struct {
	db   DB
	name string
}

// NewPostgresStore creates a PostgresStore for the named document
func NewPostgresStore(db DB, name string) *PostgresStore {
	return &PostgresStore{db: db, name: name}
}

// Load selects the document row
func (s *PostgresStore) Load(ctx context.Context) (domain.Document, LoadState, error) {
	query := `
		SELECT body
		FROM inventory_documents
		WHERE name = $1
	`
	var body []byte
	err := s.db.QueryRow(ctx, query, s.name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewDocument(), LoadStateFresh, nil
	}
	if err != nil {
		return nil, LoadStateFresh, fmt.Errorf("failed to load inventory document %q: %w", s.name, err)
	}

	doc, err := decodeDocument(body)
	if err != nil {
		recordRecovery(ctx, RecoveryReasonDecode, "inventory_documents/"+s.name, err)
		return domain.NewDocument(), LoadStateRecovered, nil
	}
	return doc, LoadStateLoaded, nil
}

// Save upserts the document row
func (s *PostgresStore) Save(ctx context.Context, doc domain.Document) error {
	body, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO inventory_documents (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, s.name, body); err != nil {
		return fmt.Errorf("failed to save inventory document %q: %w", s.name, err)
	}

	logger.FromContext(ctx).Debug(LogMsgDocumentSaved, "document", s.name, "bytes", len(body))
	return nil
}

// Ping checks database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
