package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/LiamCoop/upload-prints/internal/core/domain"
	"github.com/LiamCoop/upload-prints/internal/core/port"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type sqlFileRepository struct {
	db SQLQuerier
}

// NewSqlFileRepository creates sqlFileRepository that implements port.FileRepository
func NewSqlFileRepository(db SQLQuerier) port.FileRepository {
	return &sqlFileRepository{
		db: db,
	}
}

const fileColumns = `id, order_id, kind, file_name, file_size, mime_type,
              storage_key, storage_url, status, uploaded_by, notes,
              created_at, updated_at`

// Create inserts a new file record. A unique violation on storage_key
// maps to domain.ErrAlreadyExists; the key scheme makes this vanishingly
// rare but the constraint is the hard guarantee.
func (s *sqlFileRepository) Create(ctx context.Context, record domain.FileRecord) error {
	query := `INSERT INTO order_files (id, order_id, kind, file_name, file_size, mime_type,
                storage_key, storage_url, status, uploaded_by, notes, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.OrderID, record.Kind, record.FileName, record.FileSize,
		record.MimeType, record.StorageKey, record.StorageURL, record.Status,
		record.UploadedBy, record.Notes, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("error inserting file record: %w", err)
	}
	return nil
}

// FindByID finds a file record by id
func (s *sqlFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error) {
	query := `SELECT ` + fileColumns + ` FROM order_files WHERE id = $1`

	var dbFile dbFileRecord
	err := s.db.QueryRowContext(ctx, query, id).Scan(dbFile.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, fmt.Errorf("error querying file record: %w", err)
	}

	return dbFile.ToDomain(), nil
}

// MarkCompleted transitions a record to COMPLETED and stores the
// confirmed storage reference
func (s *sqlFileRepository) MarkCompleted(ctx context.Context, id uuid.UUID, storageURL string) error {
	query := `UPDATE order_files
              SET status = $1, storage_url = $2, updated_at = now()
              WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, domain.UploadStatusCompleted, storageURL, id)
	if err != nil {
		return fmt.Errorf("error completing file record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrFileNotFound
	}

	return nil
}

// MarkFailed transitions a record to FAILED. COMPLETED is terminal, so
// the status guard turns a stale failure into a no-op instead of
// regressing the record.
func (s *sqlFileRepository) MarkFailed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE order_files
              SET status = $1, updated_at = now()
              WHERE id = $2 AND status <> $3`

	_, err := s.db.ExecContext(ctx, query, domain.UploadStatusFailed, id, domain.UploadStatusCompleted)
	if err != nil {
		return fmt.Errorf("error failing file record: %w", err)
	}
	return nil
}

// ListByOrder lists an order's file records of one kind, creation time
// ascending. With onlyCompleted set, pending and failed reservations
// are excluded.
func (s *sqlFileRepository) ListByOrder(ctx context.Context, orderID uuid.UUID, kind domain.FileKind, onlyCompleted bool) ([]domain.FileRecord, error) {
	query := `SELECT ` + fileColumns + ` FROM order_files WHERE order_id = $1 AND kind = $2`
	args := []any{orderID, kind}
	if onlyCompleted {
		query += ` AND status = $3`
		args = append(args, domain.UploadStatusCompleted)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying file records: %w", err)
	}
	defer rows.Close()

	var records []domain.FileRecord
	for rows.Next() {
		var dbFile dbFileRecord
		if err := rows.Scan(dbFile.fields()...); err != nil {
			return nil, fmt.Errorf("error scanning file record: %w", err)
		}
		records = append(records, *dbFile.ToDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file records: %w", err)
	}

	return records, nil
}

// dbFileRecord represents a file record row in DB
type dbFileRecord struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	Kind       string
	FileName   string
	FileSize   int64
	MimeType   string
	StorageKey string
	StorageURL string
	Status     string
	UploadedBy string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (f *dbFileRecord) fields() []any {
	return []any{
		&f.ID, &f.OrderID, &f.Kind, &f.FileName, &f.FileSize, &f.MimeType,
		&f.StorageKey, &f.StorageURL, &f.Status, &f.UploadedBy, &f.Notes,
		&f.CreatedAt, &f.UpdatedAt,
	}
}

// ToDomain converts to domain.FileRecord
func (f *dbFileRecord) ToDomain() *domain.FileRecord {
	return &domain.FileRecord{
		ID:         f.ID,
		OrderID:    f.OrderID,
		Kind:       domain.FileKind(f.Kind),
		FileName:   f.FileName,
		FileSize:   f.FileSize,
		MimeType:   f.MimeType,
		StorageKey: f.StorageKey,
		StorageURL: f.StorageURL,
		Status:     domain.UploadStatus(f.Status),
		UploadedBy: f.UploadedBy,
		Notes:      f.Notes,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
}
