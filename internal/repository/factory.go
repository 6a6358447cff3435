package repository

import (
	"fmt"
	"strings"

	"product-catalog-service/config"
	domainRepo "product-catalog-service/internal/domain/repository"
	"product-catalog-service/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
)

// NewProductRepository selects and constructs the configured storage backend.
// This is the only place in the codebase that branches on the repository
// type. Unknown or empty values fall back to the in-memory store; a MySQL
// connection failure is fatal to startup and propagates unretried.
func NewProductRepository(cfg *config.Config) (domainRepo.ProductRepository, error) {
	switch strings.ToLower(cfg.Repository.Type) {
	case config.RepositoryMySQL:
		db, err := database.NewMySQLConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("create mysql repository: %w", err)
		}
		logrus.Info("Using MySQL product repository")
		return NewMySQLProductRepository(db), nil

	case config.RepositoryMemory:
		logrus.Info("Using in-memory product repository")
		return NewMemoryProductRepository(), nil

	default:
		logrus.Warnf("Unknown repository type %q, falling back to in-memory", cfg.Repository.Type)
		return NewMemoryProductRepository(), nil
	}
}
