package repository

import (
	"context"
	"fmt"
)

// CreateSession registers a new session ID
func (r *Repository) CreateSession(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `INSERT INTO sessions (id) VALUES ($1)`, id); err != nil {
		return fmt.Errorf("repository: failed to create session: %w", err)
	}
	return nil
}

// LoadPreferences returns the stored preferences of a session. found is false when
// the session does not exist.
func (r *Repository) LoadPreferences(ctx context.Context, id string) (map[string]string, bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sessions WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, false, fmt.Errorf("repository: failed to look up session: %w", err)
	}
	if !exists {
		return nil, false, nil
	}

	rows, err := r.db.Query(ctx, `SELECT name, value FROM preferences WHERE session_id = $1`, id)
	if err != nil {
		return nil, false, fmt.Errorf("repository: failed to load preferences: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return nil, false, fmt.Errorf("repository: failed to scan preference: %w", err)
		}
		values[name] = value
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return values, true, nil
}

// SavePreference upserts one preference value
func (r *Repository) SavePreference(ctx context.Context, id, name, value string) error {
	sql := `
		INSERT INTO preferences (session_id, name, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`
	if _, err := r.db.Exec(ctx, sql, id, name, value); err != nil {
		return fmt.Errorf("repository: failed to save preference: %w", err)
	}
	return nil
}

// DeletePreference removes one preference value
func (r *Repository) DeletePreference(ctx context.Context, id, name string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM preferences WHERE session_id = $1 AND name = $2`, id, name); err != nil {
		return fmt.Errorf("repository: failed to delete preference: %w", err)
	}
	return nil
}
