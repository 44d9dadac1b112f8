package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zaibaitech/asrar-sub000/internal/db"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// SQLiteUserProfileRepo implements UserProfileRepo using a SQLite database.
type SQLiteUserProfileRepo struct {
	db db.DBTX
}

// NewSQLiteUserProfileRepo creates a new SQLiteUserProfileRepo.
func NewSQLiteUserProfileRepo(conn db.DBTX) *SQLiteUserProfileRepo {
	return &SQLiteUserProfileRepo{db: conn}
}

const profileColumns = `id, name, element, updated_at`

func (r *SQLiteUserProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profile
		ORDER BY updated_at DESC, rowid DESC LIMIT 1`
	return r.scan(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteUserProfileRepo) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profile WHERE id = ?`
	return r.scan(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteUserProfileRepo) scan(row *sql.Row) (*domain.UserProfile, error) {
	var (
		p         domain.UserProfile
		element   string
		updatedAt string
	)
	if err := row.Scan(&p.ID, &p.Name, &element, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	p.Element = domain.Element(element)
	p.UpdatedAt = parseStoredTime(updatedAt)
	return &p, nil
}

func (r *SQLiteUserProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	now := formatTime(p.UpdatedAt)
	query := `INSERT INTO user_profile (id, name, element, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			element = excluded.element,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, string(p.Element), now, now)
	if err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}
