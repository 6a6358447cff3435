package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"product-catalog-service/internal/domain/entity"
	domainRepo "product-catalog-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// mysqlProductRepository stores products in the pre-provisioned `products`
// table. All statements are parameterized by gorm. Driver errors propagate to
// the caller; this layer never retries.
type mysqlProductRepository struct {
	db *gorm.DB
}

func NewMySQLProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &mysqlProductRepository{db: db}
}

// Initialize is a no-op: the schema is provisioned outside this service.
func (r *mysqlProductRepository) Initialize(ctx context.Context) error {
	return nil
}

// Close releases the underlying connection pool.
func (r *mysqlProductRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *mysqlProductRepository) FindAll(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("find all products: %w", err)
	}
	return products, nil
}

func (r *mysqlProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find product %s: %w", id, err)
	}
	return &product, nil
}

func (r *mysqlProductRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	created := *product
	if created.ID == "" {
		created.ID = uuid.New().String()
	}
	now := time.Now()
	created.CreatedAt = now
	created.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &created, nil
}

// Update reads the current row first; a missing row is a nil result and no
// write is issued. The merge happens in memory, then the full row is saved
// keyed by id. The read and the write are two round trips with no
// transaction between them, which is acceptable for single-writer-per-id
// usage.
func (r *mysqlProductRepository) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	patch.Apply(product)

	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return product, nil
}

func (r *mysqlProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Product{})
	if result.Error != nil {
		return false, fmt.Errorf("delete product %s: %w", id, result.Error)
	}
	return result.RowsAffected > 0, nil
}
