package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-catalog-service/internal/delivery/dto"
	"product-catalog-service/internal/usecase"
	"product-catalog-service/pkg/response"
	"product-catalog-service/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	productUsecase usecase.ProductUsecase
	validator      *validator.CustomValidator
}

func NewProductHandler(productUsecase usecase.ProductUsecase, validator *validator.CustomValidator) *ProductHandler {
	return &ProductHandler{
		productUsecase: productUsecase,
		validator:      validator,
	}
}

// GetAll handles listing all products
// @Summary Get all products
// @Description Retrieve a list of all products
// @Tags Products
// @Produce json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUsecase.GetAll(r.Context())
	if err != nil {
		logrus.Errorf("Failed to get products: %v", err)
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, products)
}

// GetByID handles getting a product by ID
// @Summary Get product by ID
// @Description Retrieve a single product by its ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		logrus.Errorf("Failed to get product %s: %v", id, err)
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Create handles product creation
// @Summary Create a new product
// @Description Create a new product with the provided data
// @Tags Products
// @Accept json
// @Produce json
// @Param request body dto.CreateProductRequest true "Create Product Request"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if req.Price.IsNegative() {
		response.Error(w, http.StatusBadRequest, "Price must be non-negative")
		return
	}

	product, err := h.productUsecase.Create(r.Context(), &req)
	if err != nil {
		logrus.Errorf("Failed to create product: %v", err)
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusCreated, product)
}

// Update handles partial product update
// @Summary Update a product
// @Description Update a product by its ID; omitted fields are left unchanged
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.UpdateProductRequest true "Update Product Request"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if req.Price != nil && req.Price.IsNegative() {
		response.Error(w, http.StatusBadRequest, "Price must be non-negative")
		return
	}

	product, err := h.productUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		logrus.Errorf("Failed to update product %s: %v", id, err)
		response.InternalServerError(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// Delete handles product deletion
// @Summary Delete a product
// @Description Delete a product by its ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.productUsecase.Delete(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			response.NotFound(w, "Product not found")
			return
		}
		logrus.Errorf("Failed to delete product %s: %v", id, err)
		response.InternalServerError(w, err.Error())
		return
	}

	response.NoContent(w)
}
