package repo

import (
	"context"
	"errors"

	"github.com/stockwise/inventory-api/internal/models"
)

// ErrCategoryNotFound is returned when a category is not found in the repository.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int) (models.Category, error)
	Create(ctx context.Context, c models.Category) (models.Category, error)

	// Update copies only name and status onto the stored record.
	Update(ctx context.Context, c models.Category) (models.Category, error)

	// Delete removes the record and returns it.
	Delete(ctx context.Context, id int) (models.Category, error)
}
