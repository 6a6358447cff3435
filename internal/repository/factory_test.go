package repository

import (
	"context"
	"testing"

	"product-catalog-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("MemorySelectsInMemoryStore", func(t *testing.T) {
		cfg := &config.Config{Repository: config.RepositoryConfig{Type: config.RepositoryMemory}}

		repo, err := NewProductRepository(cfg)
		require.NoError(t, err)
		require.NoError(t, repo.Initialize(ctx))

		products, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 4)
	})

	t.Run("CaseInsensitiveSelection", func(t *testing.T) {
		cfg := &config.Config{Repository: config.RepositoryConfig{Type: "Memory"}}

		repo, err := NewProductRepository(cfg)
		require.NoError(t, err)
		assert.IsType(t, &memoryProductRepository{}, repo)
	})

	t.Run("UnknownTypeFallsBackToMemory", func(t *testing.T) {
		cfg := &config.Config{Repository: config.RepositoryConfig{Type: "cassandra"}}

		repo, err := NewProductRepository(cfg)
		require.NoError(t, err)
		assert.IsType(t, &memoryProductRepository{}, repo)
	})

	t.Run("EmptyTypeFallsBackToMemory", func(t *testing.T) {
		cfg := &config.Config{}

		repo, err := NewProductRepository(cfg)
		require.NoError(t, err)
		assert.IsType(t, &memoryProductRepository{}, repo)
	})
}
