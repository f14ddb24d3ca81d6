package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/arkfx/BiblioShare/internal/client/storage"
	"github.com/arkfx/BiblioShare/internal/models"
)

var profileKey = []byte("current")

var _ storage.ProfileStorage = (*Storage)(nil)

// SaveProfile сохраняет последний известный профиль
func (s *Storage) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfile)
		if bucket == nil {
			return fmt.Errorf("profile bucket not found")
		}
		if err := bucket.Put(profileKey, data); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		return nil
	})
}

// GetProfile возвращает сохраненный профиль
func (s *Storage) GetProfile(ctx context.Context) (*models.Profile, error) {
	var profile *models.Profile

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfile)
		if bucket == nil {
			return fmt.Errorf("profile bucket not found")
		}

		data := bucket.Get(profileKey)
		if data == nil {
			return storage.ErrProfileNotFound
		}

		profile = &models.Profile{}
		if err := json.Unmarshal(data, profile); err != nil {
			return fmt.Errorf("failed to unmarshal profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// DeleteProfile удаляет кэш профиля
func (s *Storage) DeleteProfile(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketProfile)
		if bucket == nil {
			return fmt.Errorf("profile bucket not found")
		}
		if err := bucket.Delete(profileKey); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		return nil
	})
}
