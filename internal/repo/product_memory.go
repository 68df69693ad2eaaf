package repo

import (
	"context"
	"sort"
	"strings"

	"github.com/stockwise/inventory-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// It resolves category names through the category repository it is built with,
// mirroring the inner join of the database implementation: products whose
// category no longer exists are not listed.
type InMemoryProductRepository struct {
	products   []models.Product
	nextID     int
	categories *InMemoryCategoryRepository
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository(categories *InMemoryCategoryRepository) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products:   []models.Product{},
		nextID:     1,
		categories: categories,
	}
}

func (r *InMemoryProductRepository) join(ctx context.Context, p models.Product) (models.ProductWithCategory, bool) {
	c, err := r.categories.GetByID(ctx, p.CategoryID)
	if err != nil {
		return models.ProductWithCategory{}, false
	}
	return models.ProductWithCategory{Product: p, CategoryName: c.Name}, true
}

func matchesFilter(p models.Product, f ProductFilter) bool {
	if f.SearchQuery != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.SearchQuery)) {
		return false
	}
	if f.SelectedCategory != nil && p.CategoryID != *f.SelectedCategory {
		return false
	}
	return true
}

func (r *InMemoryProductRepository) Filter(ctx context.Context, f ProductFilter) ([]models.ProductWithCategory, int64, error) {
	var filtered []models.ProductWithCategory
	for _, p := range r.products {
		if !matchesFilter(p, f) {
			continue
		}
		if joined, ok := r.join(ctx, p); ok {
			filtered = append(filtered, joined)
		}
	}

	// Newest first, matching the ORDER BY id DESC of the database implementation.
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID > filtered[j].ID })

	total := int64(len(filtered))

	start := clamp(f.Offset(), 0, len(filtered))
	end := clamp(start+f.Limit, start, len(filtered))

	return filtered[start:end], total, nil
}

func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int) (models.ProductWithCategory, error) {
	for _, p := range r.products {
		if p.ID == id {
			if joined, ok := r.join(ctx, p); ok {
				return joined, nil
			}
			return models.ProductWithCategory{}, ErrProductNotFound
		}
	}
	return models.ProductWithCategory{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Create(_ context.Context, p models.Product, attach AttachFunc) (models.Product, error) {
	p.ID = r.nextID
	p.Picture = models.NoImage
	if attach != nil {
		name, err := attach()
		if err != nil {
			return models.Product{}, err
		}
		p.Picture = name
	}
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func (r *InMemoryProductRepository) Update(_ context.Context, p models.Product, attach AttachFunc) (models.Product, string, error) {
	for i, existing := range r.products {
		if existing.ID != p.ID {
			continue
		}
		oldPicture := existing.Picture
		existing.Name = p.Name
		existing.UnitPrice = p.UnitPrice
		existing.UnitInStock = p.UnitInStock
		existing.CategoryID = p.CategoryID
		existing.ModifiedDate = p.ModifiedDate
		if attach != nil {
			name, err := attach()
			if err != nil {
				return models.Product{}, "", err
			}
			existing.Picture = name
		}
		r.products[i] = existing
		return existing, oldPicture, nil
	}
	return models.Product{}, "", ErrProductNotFound
}

func (r *InMemoryProductRepository) Delete(_ context.Context, id int) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
	r.nextID = 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
