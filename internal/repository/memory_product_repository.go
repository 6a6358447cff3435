package repository

import (
	"context"
	"sync"
	"time"

	"product-catalog-service/internal/domain/entity"
	domainRepo "product-catalog-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// memoryProductRepository keeps the whole catalog in a map keyed by product
// id. Data lives for the lifetime of the process only. The map is guarded by
// a mutex; every mutation stores a fresh copy so callers never hold a
// reference into the store.
type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product
}

func NewMemoryProductRepository() domainRepo.ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]entity.Product),
	}
}

// Initialize seeds the default catalog. Seeding happens here and only here,
// and only when the store is still empty, so calling Initialize again is a
// no-op and concurrent callers cannot double-seed.
func (r *memoryProductRepository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.products) > 0 {
		return nil
	}

	defaults := []struct {
		name        string
		price       string
		description string
	}{
		{"Laptop", "999.99", "High performance laptop"},
		{"Smartphone", "499.99", "Latest model smartphone"},
		{"Headphones", "99.99", "Noise cancelling headphones"},
		{"Monitor", "299.99", "27-inch 4K monitor"},
	}

	now := time.Now()
	for _, d := range defaults {
		price, err := decimal.NewFromString(d.price)
		if err != nil {
			return err
		}
		product := entity.Product{
			ID:          uuid.New().String(),
			Name:        d.name,
			Price:       price,
			Description: d.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		r.products[product.ID] = product
	}

	logrus.Infof("In-memory repository seeded with %d default products", len(defaults))
	return nil
}

func (r *memoryProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]entity.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	return products, nil
}

func (r *memoryProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *memoryProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *product
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.products[stored.ID] = stored

	created := stored
	return &created, nil
}

func (r *memoryProductRepository) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[id]
	if !ok {
		return nil, nil
	}

	patch.Apply(&stored)
	r.products[id] = stored

	updated := stored
	return &updated, nil
}

func (r *memoryProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return false, nil
	}

	delete(r.products, id)
	return true, nil
}
