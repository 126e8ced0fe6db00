package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/ifc-calendar/internal/calendar"
)

// parseTimestamp parses a timestamp from SQLite TEXT format.
// It returns the zero time if the value cannot be parsed.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// GetSelection returns the stored selection for userID.
// Returns ErrNotFound if the user has never selected a date.
func (db *DB) GetSelection(ctx context.Context, userID string) (*Selection, error) {
	return getSelection(ctx, db.DB, userID)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getSelection(ctx context.Context, q queryRower, userID string) (*Selection, error) {
	query := `
		SELECT user_id, date, source, created_at, updated_at
		FROM selections
		WHERE user_id = ?
	`

	var (
		sel                        Selection
		dateStr, source            string
		createdAtStr, updatedAtStr string
	)

	err := q.QueryRowContext(ctx, query, userID).Scan(
		&sel.UserID,
		&dateStr,
		&source,
		&createdAtStr,
		&updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query selection: %w", err)
	}

	sel.Date, err = calendar.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("stored selection date %q: %w", dateStr, err)
	}
	sel.Source = calendar.GridKind(source)
	sel.CreatedAt = parseTimestamp(createdAtStr)
	sel.UpdatedAt = parseTimestamp(updatedAtStr)

	return &sel, nil
}

// SaveSelection creates or replaces the selection for userID and returns
// the stored row.
func (db *DB) SaveSelection(ctx context.Context, userID string, date calendar.GregorianDate, source calendar.GridKind) (*Selection, error) {
	if userID == "" {
		return nil, errors.New("save selection: user id is required")
	}
	if source == "" {
		source = calendar.KindGregorian
	}

	var saved *Selection
	err := db.WithTx(ctx, func(tx *Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO selections (user_id, date, source)
			VALUES (?, ?, ?)
			ON CONFLICT (user_id) DO UPDATE SET
				date = excluded.date,
				source = excluded.source,
				updated_at = datetime('now')
		`, userID, calendar.FormatDate(date), string(source))
		if err != nil {
			return fmt.Errorf("upsert selection: %w", err)
		}

		saved, err = getSelection(ctx, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	db.logger.Debug("selection saved",
		slog.String("user_id", userID),
		slog.String("date", calendar.FormatDate(date)),
		slog.String("source", string(source)),
	)

	return saved, nil
}

// DeleteSelection removes the selection for userID.
// Returns ErrNotFound if there was nothing to delete.
func (db *DB) DeleteSelection(ctx context.Context, userID string) error {
	res, err := db.ExecContext(ctx, "DELETE FROM selections WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}
