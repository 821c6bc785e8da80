package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/moodkeeper/internal/client/storage"
	"github.com/iudanet/moodkeeper/internal/models"
)

// PutMutation stores or replaces a pending mutation by id
func (s *Storage) PutMutation(ctx context.Context, mutation *models.PendingMutation) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		data, err := json.Marshal(mutation)
		if err != nil {
			return fmt.Errorf("failed to marshal mutation: %w", err)
		}

		if err := bucket.Put([]byte(mutation.ID), data); err != nil {
			return fmt.Errorf("failed to save mutation: %w", err)
		}

		return nil
	})
}

// GetMutation retrieves a pending mutation by id
func (s *Storage) GetMutation(ctx context.Context, id string) (*models.PendingMutation, error) {
	var mutation *models.PendingMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrMutationNotFound
		}

		mutation = &models.PendingMutation{}
		if err := json.Unmarshal(data, mutation); err != nil {
			return fmt.Errorf("failed to unmarshal mutation: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return mutation, nil
}

// DeleteMutation removes a mutation from the buffer
func (s *Storage) DeleteMutation(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrMutationNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete mutation: %w", err)
		}

		return nil
	})
}

// ListMutations returns all buffered mutations, newest-first by CreatedAt
func (s *Storage) ListMutations(ctx context.Context) ([]*models.PendingMutation, error) {
	var mutations []*models.PendingMutation

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			mutation := &models.PendingMutation{}
			if err := json.Unmarshal(v, mutation); err != nil {
				return fmt.Errorf("failed to unmarshal mutation %s: %w", string(k), err)
			}
			mutations = append(mutations, mutation)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	// Bolt итерирует по ключам, сортируем по времени создания newest-first
	sort.Slice(mutations, func(i, j int) bool {
		return mutations[i].NewerThan(mutations[j])
	})

	return mutations, nil
}

// MarkFailed flags a mutation as terminally failed, keeping it visible
func (s *Storage) MarkFailed(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPending)
		if bucket == nil {
			return fmt.Errorf("pending bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrMutationNotFound
		}

		mutation := &models.PendingMutation{}
		if err := json.Unmarshal(data, mutation); err != nil {
			return fmt.Errorf("failed to unmarshal mutation: %w", err)
		}

		mutation.Status = models.MutationFailed

		updated, err := json.Marshal(mutation)
		if err != nil {
			return fmt.Errorf("failed to marshal mutation: %w", err)
		}

		if err := bucket.Put([]byte(id), updated); err != nil {
			return fmt.Errorf("failed to update mutation: %w", err)
		}

		return nil
	})
}
