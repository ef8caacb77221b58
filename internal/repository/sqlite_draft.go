package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/haythamstudio/intake/internal/domain"
)

// SQLiteDraftRepo implements DraftRepo using a SQLite database.
type SQLiteDraftRepo struct {
	db *sql.DB
}

// NewSQLiteDraftRepo creates a new SQLiteDraftRepo.
func NewSQLiteDraftRepo(db *sql.DB) *SQLiteDraftRepo {
	return &SQLiteDraftRepo{db: db}
}

func (r *SQLiteDraftRepo) Create(ctx context.Context, d *domain.Draft) error {
	payload, err := json.Marshal(d.State)
	if err != nil {
		return fmt.Errorf("encoding draft state: %w", err)
	}
	query := `INSERT INTO drafts (id, tenant_id, token, payload, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		d.ID,
		d.TenantID,
		d.Token,
		string(payload),
		d.CreatedAt.Format(time.RFC3339),
		d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting draft: %w", err)
	}
	return nil
}

func (r *SQLiteDraftRepo) GetByID(ctx context.Context, id string) (*domain.Draft, error) {
	query := `SELECT id, tenant_id, token, payload, created_at, updated_at FROM drafts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanDraft(row)
}

func (r *SQLiteDraftRepo) List(ctx context.Context) ([]*domain.Draft, error) {
	query := `SELECT id, tenant_id, token, payload, created_at, updated_at FROM drafts ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing drafts: %w", err)
	}
	defer rows.Close()

	var drafts []*domain.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			return nil, err
		}
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating drafts: %w", err)
	}
	return drafts, nil
}

func (r *SQLiteDraftRepo) Update(ctx context.Context, d *domain.Draft) error {
	payload, err := json.Marshal(d.State)
	if err != nil {
		return fmt.Errorf("encoding draft state: %w", err)
	}
	query := `UPDATE drafts SET tenant_id = ?, token = ?, payload = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		d.TenantID,
		d.Token,
		string(payload),
		d.UpdatedAt.Format(time.RFC3339),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating draft: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteDraftRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDraft(row scanner) (*domain.Draft, error) {
	var d domain.Draft
	var payload, createdAt, updatedAt string
	err := row.Scan(&d.ID, &d.TenantID, &d.Token, &payload, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning draft: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &d.State); err != nil {
		return nil, fmt.Errorf("decoding draft state: %w", err)
	}
	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &d, nil
}
