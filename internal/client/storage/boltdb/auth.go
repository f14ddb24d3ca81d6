package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/arkfx/BiblioShare/internal/client/storage"
	"github.com/arkfx/BiblioShare/internal/models"
)

// authKey фиксированный ключ записи сессии
var authKey = []byte("biblioshare.tokens")

// Compile-time check that Storage implements storage.AuthStorage
var _ storage.AuthStorage = (*Storage)(nil)

// SaveAuth stores session credentials
func (s *Storage) SaveAuth(ctx context.Context, creds *models.Credentials) error {
	if creds == nil {
		return fmt.Errorf("credentials are nil")
	}

	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(creds)
		if err != nil {
			return fmt.Errorf("failed to marshal auth data: %w", err)
		}

		// Сохраняем в bucket
		if err := bucket.Put(authKey, data); err != nil {
			return fmt.Errorf("failed to save auth data: %w", err)
		}

		return nil
	})
}

// GetAuth retrieves stored session credentials
func (s *Storage) GetAuth(ctx context.Context) (*models.Credentials, error) {
	var creds *models.Credentials

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Получаем данные
		data := bucket.Get(authKey)
		if data == nil {
			return storage.ErrAuthNotFound
		}

		// Десериализуем; битая запись не фатальна, ее обработает вызывающий
		creds = &models.Credentials{}
		if err := json.Unmarshal(data, creds); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrAuthCorrupted, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return creds, nil
}

// DeleteAuth removes stored session credentials (logout)
func (s *Storage) DeleteAuth(ctx context.Context) error {
	return s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketAuth)
		if bucket == nil {
			return fmt.Errorf("auth bucket not found")
		}

		// Удаление отсутствующего ключа в bbolt не является ошибкой
		if err := bucket.Delete(authKey); err != nil {
			return fmt.Errorf("failed to delete auth data: %w", err)
		}

		return nil
	})
}
