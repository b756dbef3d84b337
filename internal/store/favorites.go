package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// favoritesRepo stores the list as one JSON row.
type favoritesRepo struct {
	db *sql.DB
}

func (r *favoritesRepo) Load(ctx context.Context) ([]string, bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT names FROM favorites WHERE id = 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("query favorites: %w", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, false, fmt.Errorf("decode favorites: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, true, nil
}

func (r *favoritesRepo) Save(ctx context.Context, names []string) error {
	if names == nil {
		names = []string{}
	}
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode favorites: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO favorites (id, names, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET names = excluded.names, updated_at = excluded.updated_at`,
		string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}

func (r *favoritesRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM favorites`); err != nil {
		return fmt.Errorf("clear favorites: %w", err)
	}
	return nil
}
