package repository

import (
	"context"
	"testing"
	"time"

	"product-catalog-service/internal/domain/entity"
	domainRepo "product-catalog-service/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repoFactory returns a fresh, empty repository for each subtest so both
// implementations face identical call sequences.
type repoFactory func(t *testing.T) domainRepo.ProductRepository

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestProduct(name, price, description string) *entity.Product {
	return &entity.Product{
		Name:        name,
		Price:       decimal.RequireFromString(price),
		Description: description,
	}
}

// runProductRepositoryContract exercises the behavior every repository
// implementation must share: not-found as a nil result, id generation,
// merge-on-update and boolean delete semantics.
func runProductRepositoryContract(t *testing.T, newRepo repoFactory) {
	ctx := context.Background()

	t.Run("Create_GeneratesUniqueIDsWhenAbsent", func(t *testing.T) {
		repo := newRepo(t)

		first, err := repo.Create(ctx, newTestProduct("Laptop", "999.99", "High performance laptop"))
		require.NoError(t, err)
		second, err := repo.Create(ctx, newTestProduct("Smartphone", "499.99", "Latest model smartphone"))
		require.NoError(t, err)

		assert.NotEmpty(t, first.ID)
		assert.NotEmpty(t, second.ID)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Create_KeepsProvidedID", func(t *testing.T) {
		repo := newRepo(t)

		product := newTestProduct("Laptop", "999.99", "")
		product.ID = "fixed-id-001"

		created, err := repo.Create(ctx, product)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id-001", created.ID)
	})

	t.Run("Create_ThenFindByID_RoundTrips", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, newTestProduct("Laptop", "999.99", "High performance laptop"))
		require.NoError(t, err)
		assert.False(t, created.CreatedAt.IsZero())
		assert.False(t, created.UpdatedAt.IsZero())

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Laptop", found.Name)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("999.99")), "price %s", found.Price)
		assert.Equal(t, "High performance laptop", found.Description)
	})

	t.Run("FindByID_ReturnsNilForUnknownID", func(t *testing.T) {
		repo := newRepo(t)

		found, err := repo.FindByID(ctx, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("FindAll_ReturnsEveryStoredProduct", func(t *testing.T) {
		repo := newRepo(t)

		laptop, err := repo.Create(ctx, newTestProduct("Laptop", "999.99", ""))
		require.NoError(t, err)
		phone, err := repo.Create(ctx, newTestProduct("Smartphone", "499.99", ""))
		require.NoError(t, err)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		names := []string{all[0].Name, all[1].Name}
		assert.ElementsMatch(t, []string{"Laptop", "Smartphone"}, names)

		for _, id := range []string{laptop.ID, phone.ID} {
			found, err := repo.FindByID(ctx, id)
			require.NoError(t, err)
			require.NotNil(t, found)
		}
	})

	t.Run("Update_MergesOnlyProvidedFields", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, newTestProduct("X", "5", "d"))
		require.NoError(t, err)
		previousUpdatedAt := created.UpdatedAt

		time.Sleep(10 * time.Millisecond)

		updated, err := repo.Update(ctx, created.ID, entity.ProductPatch{Price: decPtr("10")})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, "X", updated.Name)
		assert.True(t, updated.Price.Equal(decimal.RequireFromString("10")), "price %s", updated.Price)
		assert.Equal(t, "d", updated.Description)
		assert.True(t, updated.UpdatedAt.After(previousUpdatedAt),
			"UpdatedAt %v should be after %v", updated.UpdatedAt, previousUpdatedAt)
		assert.WithinDuration(t, created.CreatedAt, updated.CreatedAt, time.Second)

		// Merge persists, not just the returned value
		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "X", found.Name)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("10")))
	})

	t.Run("Update_ReturnsNilForUnknownIDWithoutCreating", func(t *testing.T) {
		repo := newRepo(t)

		updated, err := repo.Update(ctx, "does-not-exist", entity.ProductPatch{Name: strPtr("Ghost")})
		require.NoError(t, err)
		assert.Nil(t, updated)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Delete_ReportsWhetherARecordWasRemoved", func(t *testing.T) {
		repo := newRepo(t)

		created, err := repo.Create(ctx, newTestProduct("Laptop", "999.99", ""))
		require.NoError(t, err)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, found)

		deleted, err = repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
