package repo

import (
	"context"
	"errors"

	"github.com/stockwise/inventory-api/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// AttachFunc stages an uploaded image and returns the stored filename. It is
// invoked inside the repository's transaction, after the record exists, so a
// failed stage rolls the record change back and a committed record never
// references a file that was not written.
type AttachFunc func() (string, error)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	// Filter returns the joined product rows matching f plus the total
	// count of the filtered set before paging.
	Filter(ctx context.Context, f ProductFilter) ([]models.ProductWithCategory, int64, error)

	// GetByID returns the product joined with its category name.
	GetByID(ctx context.Context, id int) (models.ProductWithCategory, error)

	// Create inserts p with a fresh id. When attach is nil the picture is
	// set to models.NoImage; otherwise attach resolves the stored filename.
	Create(ctx context.Context, p models.Product, attach AttachFunc) (models.Product, error)

	// Update copies name, unit price, unit-in-stock, category id and
	// modified date from p onto the stored record; created date and, absent
	// an attach, the picture are left untouched. The previous picture value
	// is returned so the caller can remove the replaced file after commit.
	Update(ctx context.Context, p models.Product, attach AttachFunc) (models.Product, string, error)

	// Delete removes the record and returns it.
	Delete(ctx context.Context, id int) (models.Product, error)
}
