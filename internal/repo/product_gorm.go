package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stockwise/inventory-api/internal/models"
)

// joinedColumns selects the product row plus the category display name for
// scanning into models.ProductWithCategory.
const joinedColumns = "products.id, products.name, products.unit_price, products.unit_in_stock, " +
	"products.picture, products.category_id, products.created_date, products.modified_date, " +
	"categories.name AS category_name"

// GormProductRepository is the postgres-backed implementation of ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Joins("JOIN categories ON categories.id = products.category_id")
}

func (r *GormProductRepository) Filter(ctx context.Context, f ProductFilter) ([]models.ProductWithCategory, int64, error) {
	query := r.joined(ctx)

	if f.SearchQuery != "" {
		query = query.Where("products.name ILIKE ?", "%"+f.SearchQuery+"%")
	}
	if f.SelectedCategory != nil {
		query = query.Where("products.category_id = ?", *f.SelectedCategory)
	}

	// Count the filtered set before paging.
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.ProductWithCategory
	err := query.
		Select(joinedColumns).
		Order("products.id DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Scan(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int) (models.ProductWithCategory, error) {
	var product models.ProductWithCategory
	result := r.joined(ctx).
		Select(joinedColumns).
		Where("products.id = ?", id).
		Limit(1).
		Scan(&product)
	if result.Error != nil {
		return models.ProductWithCategory{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.ProductWithCategory{}, ErrProductNotFound
	}
	return product, nil
}

func (r *GormProductRepository) Create(ctx context.Context, p models.Product, attach AttachFunc) (models.Product, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p.ID = 0
		p.Picture = models.NoImage
		if err := tx.Create(&p).Error; err != nil {
			return err
		}
		if attach == nil {
			return nil
		}
		name, err := attach()
		if err != nil {
			return err
		}
		p.Picture = name
		return tx.Model(&models.Product{}).Where("id = ?", p.ID).Update("picture", name).Error
	})
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

func (r *GormProductRepository) Update(ctx context.Context, p models.Product, attach AttachFunc) (models.Product, string, error) {
	var updated models.Product
	var oldPicture string

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := tx.First(&existing, p.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		oldPicture = existing.Picture
		existing.Name = p.Name
		existing.UnitPrice = p.UnitPrice
		existing.UnitInStock = p.UnitInStock
		existing.CategoryID = p.CategoryID
		existing.ModifiedDate = p.ModifiedDate

		if attach != nil {
			name, err := attach()
			if err != nil {
				return err
			}
			existing.Picture = name
		}

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = existing
		return nil
	})
	if err != nil {
		return models.Product{}, "", err
	}
	return updated, oldPicture, nil
}

func (r *GormProductRepository) Delete(ctx context.Context, id int) (models.Product, error) {
	var deleted models.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
	if err != nil {
		return models.Product{}, err
	}
	return deleted, nil
}
