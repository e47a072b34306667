package repo

import "github.com/rogerio-castellano/warehouse-tracker/internal/models"

// ProductRepository defines the interface for catalog data operations.
// Products are immutable after creation, so there is no Update.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	// GetAll returns every product, or only those in the given category
	// when category is non-empty. Order is unspecified.
	GetAll(category string) ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	// Delete removes the product from the catalog. Inventory entries that
	// reference the id are left untouched; dangling references are
	// tolerated.
	Delete(id string) error
	Clear() error
}
