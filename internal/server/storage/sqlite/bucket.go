package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Increment реализует ratelimit.BucketStore: проверка и инкремент бакета
// в одной транзакции. SQLite сериализует писателей, поэтому две гонящиеся
// транзакции не могут обе увидеть "бакета нет" или потерять инкремент.
func (s *Storage) Increment(ctx context.Context, key string, maxCalls int, expiresAt time.Time) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var count int64
	var bucketExpires int64

	err = tx.QueryRowContext(ctx,
		`SELECT count, expires_at FROM rate_buckets WHERE key = ?`, key,
	).Scan(&count, &bucketExpires)

	now := time.Now()

	switch {
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		return false, fmt.Errorf("failed to read bucket: %w", err)
	case errors.Is(err, sql.ErrNoRows) || bucketExpires < now.Unix():
		// Бакета нет либо остался от истекшего окна: начинаем новый
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO rate_buckets (key, count, expires_at) VALUES (?, 1, ?)`,
			key, expiresAt.Unix(),
		); err != nil {
			return false, fmt.Errorf("failed to create bucket: %w", err)
		}
	case count < int64(maxCalls):
		if _, err := tx.ExecContext(ctx,
			`UPDATE rate_buckets SET count = count + 1 WHERE key = ?`, key,
		); err != nil {
			return false, fmt.Errorf("failed to increment bucket: %w", err)
		}
	default:
		// Лимит исчерпан, бакет не трогаем
		return false, tx.Commit()
	}

	// Попутно выметаем истекшие бакеты, чтобы таблица не росла бесконечно
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM rate_buckets WHERE expires_at < ?`, now.Unix(),
	); err != nil {
		return false, fmt.Errorf("failed to sweep expired buckets: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit bucket transaction: %w", err)
	}

	return true, nil
}
