package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/moodkeeper/internal/models"
	"github.com/iudanet/moodkeeper/internal/server/storage"
	"github.com/iudanet/moodkeeper/pkg/api"
)

// UpsertEntry creates or replaces a journal entry.
// ID генерируется клиентом, поэтому повтор того же запроса идемпотентен.
// Запись с чужим owner_id не видна и не перезаписывается.
func (s *Storage) UpsertEntry(ctx context.Context, entry *models.MoodEntry) (bool, error) {
	var existingOwner string
	var deleted int

	err := s.db.QueryRowContext(ctx,
		`SELECT owner_id, deleted FROM entries WHERE id = ?`, entry.ID,
	).Scan(&existingOwner, &deleted)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Новая запись
	case err != nil:
		return false, fmt.Errorf("failed to check existing entry: %w", err)
	case existingOwner != entry.OwnerID:
		// ID коллизия с чужой записью: не раскрываем существование
		return false, storage.ErrEntryNotFound
	}

	tags, jsonErr := json.Marshal(entry.Tags)
	if jsonErr != nil {
		return false, fmt.Errorf("failed to marshal tags: %w", jsonErr)
	}

	if errors.Is(err, sql.ErrNoRows) {
		query := `
			INSERT INTO entries (id, owner_id, mood, note, tags, recorded_at, created_at, updated_at, deleted)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0)
		`

		if _, err := s.db.ExecContext(ctx, query,
			entry.ID,
			entry.OwnerID,
			entry.Mood,
			entry.Note,
			string(tags),
			entry.RecordedAt,
			entry.CreatedAt,
			entry.UpdatedAt,
		); err != nil {
			return false, fmt.Errorf("failed to insert entry: %w", err)
		}

		return true, nil
	}

	// Upsert поверх soft-deleted записи воскрешает ее
	query := `
		UPDATE entries
		SET mood = ?, note = ?, tags = ?, recorded_at = ?, updated_at = ?, deleted = 0
		WHERE id = ? AND owner_id = ?
	`

	if _, err := s.db.ExecContext(ctx, query,
		entry.Mood,
		entry.Note,
		string(tags),
		entry.RecordedAt,
		entry.UpdatedAt,
		entry.ID,
		entry.OwnerID,
	); err != nil {
		return false, fmt.Errorf("failed to update entry: %w", err)
	}

	return false, nil
}

// GetEntry retrieves a single entry by owner and ID
func (s *Storage) GetEntry(ctx context.Context, ownerID, entryID string) (*models.MoodEntry, error) {
	query := `
		SELECT id, owner_id, mood, note, tags, recorded_at, created_at, updated_at
		FROM entries
		WHERE id = ? AND owner_id = ? AND deleted = 0
	`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, entryID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}

	return entry, nil
}

// ListEntries returns one page of the owner's entries per query
func (s *Storage) ListEntries(ctx context.Context, ownerID string, query api.SubscribeQuery) ([]*models.MoodEntry, error) {
	query.Normalize()

	// Поле сортировки только из белого списка, в SQL не интерполируем
	// пользовательский ввод напрямую
	orderBy := "recorded_at"
	if query.OrderBy == "created_at" {
		orderBy = "created_at"
	}
	orderDir := "DESC"
	if query.OrderDir == api.OrderAsc {
		orderDir = "ASC"
	}

	sqlQuery := fmt.Sprintf(`
		SELECT id, owner_id, mood, note, tags, recorded_at, created_at, updated_at
		FROM entries
		WHERE owner_id = ? AND deleted = 0
		ORDER BY %s %s, id %s
		LIMIT ?
	`, orderBy, orderDir, orderDir)

	rows, err := s.db.QueryContext(ctx, sqlQuery, ownerID, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []*models.MoodEntry

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

// DeleteEntry marks an entry as deleted (soft delete)
func (s *Storage) DeleteEntry(ctx context.Context, ownerID, entryID string) error {
	query := `UPDATE entries SET deleted = 1 WHERE id = ? AND owner_id = ? AND deleted = 0`

	result, err := s.db.ExecContext(ctx, query, entryID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrEntryNotFound
	}

	return nil
}

// scanner покрывает sql.Row и sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*models.MoodEntry, error) {
	entry := &models.MoodEntry{}
	var tags string

	if err := row.Scan(
		&entry.ID,
		&entry.OwnerID,
		&entry.Mood,
		&entry.Note,
		&tags,
		&entry.RecordedAt,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &entry.Tags); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
	}

	return entry, nil
}
