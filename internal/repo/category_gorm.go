package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stockwise/inventory-api/internal/models"
)

// GormCategoryRepository is the postgres-backed implementation of CategoryRepository.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *GormCategoryRepository) GetByID(ctx context.Context, id int) (models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Category{}, ErrCategoryNotFound
		}
		return models.Category{}, err
	}
	return category, nil
}

func (r *GormCategoryRepository) Create(ctx context.Context, c models.Category) (models.Category, error) {
	c.ID = 0
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return models.Category{}, err
	}
	return c, nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, c models.Category) (models.Category, error) {
	var updated models.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Category
		if err := tx.First(&existing, c.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
		existing.Name = c.Name
		existing.Status = c.Status
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return models.Category{}, err
	}
	return updated, nil
}

func (r *GormCategoryRepository) Delete(ctx context.Context, id int) (models.Category, error) {
	var deleted models.Category
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return models.Category{}, err
	}
	return deleted, nil
}
