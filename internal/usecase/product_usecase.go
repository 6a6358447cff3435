package usecase

import (
	"context"
	"errors"

	"product-catalog-service/internal/converter"
	"product-catalog-service/internal/delivery/dto"
	"product-catalog-service/internal/domain/entity"
	"product-catalog-service/internal/domain/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductUsecase forwards product operations to whichever repository the
// factory constructed. It is deliberately thin: the repository owns the
// storage semantics, this layer only translates absence into a sentinel
// error and entities into response DTOs.
type ProductUsecase interface {
	GetAll(ctx context.Context) ([]dto.ProductResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ProductResponse, error)
	Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type productUsecase struct {
	productRepo repository.ProductRepository
}

func NewProductUsecase(productRepo repository.ProductRepository) ProductUsecase {
	return &productUsecase{productRepo: productRepo}
}

func (u *productUsecase) GetAll(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := u.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return converter.ProductsToResponses(products), nil
}

func (u *productUsecase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := u.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return converter.ProductToResponse(product), nil
}

func (u *productUsecase) Create(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := &entity.Product{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
	}

	created, err := u.productRepo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	return converter.ProductToResponse(created), nil
}

func (u *productUsecase) Update(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	patch := entity.ProductPatch{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
	}

	updated, err := u.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}
	return converter.ProductToResponse(updated), nil
}

func (u *productUsecase) Delete(ctx context.Context, id string) error {
	deleted, err := u.productRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}
