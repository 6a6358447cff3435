package converter

import (
	"product-catalog-service/internal/delivery/dto"
	"product-catalog-service/internal/domain/entity"
)

// ProductToResponse converts a Product entity to its response DTO.
func ProductToResponse(product *entity.Product) *dto.ProductResponse {
	if product == nil {
		return nil
	}

	return &dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price.InexactFloat64(),
		Description: product.Description,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductsToResponses converts a slice of entities, always returning a
// non-nil slice so an empty catalog serializes as [].
func ProductsToResponses(products []entity.Product) []dto.ProductResponse {
	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *ProductToResponse(&products[i]))
	}
	return responses
}
