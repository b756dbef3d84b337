package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/orienta/internal/result"
)

// resultRepo stores each record as JSON alongside a few indexed columns.
type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Save(ctx context.Context, rec *result.Record) (string, error) {
	if rec == nil {
		return "", fmt.Errorf("save result: %w", result.ErrInvalidRecord)
	}
	raw, err := rec.Encode()
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO results (id, session_id, area, profession, created_at, data)
		VALUES (?, ?, ?, ?, ?, ?)`,
		id, rec.SessionID, string(rec.Area), rec.Profession,
		time.Now().UTC().Format(time.RFC3339Nano), string(raw))
	if err != nil {
		return "", fmt.Errorf("save result: %w", err)
	}
	return id, nil
}

func (r *resultRepo) Latest(ctx context.Context) (*result.Record, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM results ORDER BY seq DESC LIMIT 1`).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest result: %w", err)
	}
	return result.Decode([]byte(raw))
}

func (r *resultRepo) List(ctx context.Context, limit int) ([]StoredResult, error) {
	q := `SELECT id, data FROM results ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []StoredResult
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		rec, err := result.Decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("result %s: %w", id, err)
		}
		out = append(out, StoredResult{ID: id, Record: rec})
	}
	return out, rows.Err()
}

func (r *resultRepo) Prune(ctx context.Context, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM results WHERE seq NOT IN (
			SELECT seq FROM results ORDER BY seq DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("prune results: %w", err)
	}
	return nil
}
