package repository

import (
	"context"

	"product-catalog-service/internal/domain/entity"
)

// ProductRepository is the storage contract for products. Both the in-memory
// and the MySQL implementations satisfy it with identical observable
// behavior: absence of a record is a nil result, never an error. Errors are
// reserved for storage failures and always propagate to the caller.
type ProductRepository interface {
	// Initialize prepares the repository before it serves any other call.
	// It is idempotent and must be awaited once at startup.
	Initialize(ctx context.Context) error

	// FindAll returns every stored product, in no particular order.
	FindAll(ctx context.Context) ([]entity.Product, error)

	// FindByID returns (nil, nil) when no product has the given id.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Create persists a new product. An empty ID is replaced with a fresh
	// UUID and both timestamps are set before the write. The persisted
	// product is returned.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// Update merges the patch into an existing product and refreshes
	// UpdatedAt. Returns (nil, nil) when the id does not exist; nothing is
	// written in that case.
	Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error)

	// Delete removes the product and reports whether a record was removed.
	// A missing id yields (false, nil).
	Delete(ctx context.Context, id string) (bool, error)
}
