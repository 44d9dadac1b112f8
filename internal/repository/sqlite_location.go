package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/zaibaitech/asrar-sub000/internal/db"
	"github.com/zaibaitech/asrar-sub000/internal/domain"
)

// SQLiteLocationRepo implements LocationRepo using a SQLite database.
// Rows are returned as stored; callers validate them.
type SQLiteLocationRepo struct {
	db db.DBTX
}

func NewSQLiteLocationRepo(conn db.DBTX) *SQLiteLocationRepo {
	return &SQLiteLocationRepo{db: conn}
}

func (r *SQLiteLocationRepo) Get(ctx context.Context) (*domain.UserLocation, error) {
	query := `SELECT latitude, longitude, city_name, time_zone, is_accurate, source, updated_at
		FROM user_location WHERE id = 'default'`

	var (
		l         domain.UserLocation
		accurate  int
		source    string
		updatedAt string
	)
	err := r.db.QueryRowContext(ctx, query).Scan(
		&l.Latitude,
		&l.Longitude,
		&l.CityName,
		&l.TimeZone,
		&accurate,
		&source,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user location: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user location: %w", err)
	}
	l.IsAccurate = accurate != 0
	l.Source = domain.LocationSource(source)
	l.UpdatedAt = parseStoredTime(updatedAt)
	return &l, nil
}

func (r *SQLiteLocationRepo) Save(ctx context.Context, l *domain.UserLocation) error {
	source := l.Source
	if source == "" {
		source = domain.SourceManual
	}
	query := `INSERT OR REPLACE INTO user_location
		(id, latitude, longitude, city_name, time_zone, is_accurate, source, updated_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.Latitude,
		l.Longitude,
		l.CityName,
		l.TimeZone,
		boolToInt(l.IsAccurate),
		string(source),
		formatTime(l.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("saving user location: %w", err)
	}
	return nil
}

func (r *SQLiteLocationRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM user_location WHERE id = 'default'`); err != nil {
		return fmt.Errorf("clearing user location: %w", err)
	}
	return nil
}
