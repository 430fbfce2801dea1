// internal/services/collection_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/phixforge/phixforge-backend/internal/utils"
)

var ErrRecordNotFound = errors.New("record not found")

// CollectionService is the shared CRUD surface for the reusable-data
// collections (processes, publications, people, organizations and the rest).
// Every ranking metric treats these records as lookup targets only, so one
// parameterized implementation covers them all.
type CollectionService[T any] struct {
	db        *gorm.DB
	sortField string
}

func NewCollectionService[T any](db *gorm.DB, sortField string) *CollectionService[T] {
	if sortField == "" {
		sortField = "created_at"
	}
	return &CollectionService[T]{db: db, sortField: sortField}
}

func (s *CollectionService[T]) List() ([]T, error) {
	var records []T
	var model T
	if err := s.db.Model(&model).Order(s.sortField + " asc").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	return records, nil
}

func (s *CollectionService[T]) Get(id uuid.UUID) (*T, error) {
	var record T
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &record, nil
}

func (s *CollectionService[T]) Create(record *T) (*T, error) {
	if err := utils.ValidateStruct(record); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return record, nil
}

func (s *CollectionService[T]) Update(id uuid.UUID, record *T) (*T, error) {
	if err := utils.ValidateStruct(record); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if err := s.db.Model(record).Where("id = ?", id).Select("*").
		Omit("id", "created_at").Updates(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return s.Get(id)
}

func (s *CollectionService[T]) Delete(id uuid.UUID) error {
	var model T
	result := s.db.Delete(&model, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// ReplaceAll swaps the whole collection for the given records inside one
// transaction. Used by the snapshot importer.
func (s *CollectionService[T]) ReplaceAll(records []T) error {
	var model T
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(&model).Error; err != nil {
			return fmt.Errorf("failed to clear collection: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if err := tx.Create(&records).Error; err != nil {
			return fmt.Errorf("failed to insert records: %w", err)
		}
		return nil
	})
}
