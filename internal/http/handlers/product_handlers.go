package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	models "github.com/rogerio-castellano/warehouse-tracker/internal/models"
	repo "github.com/rogerio-castellano/warehouse-tracker/internal/repo"
)

// RegisterProductHandler godoc
// @Summary Register a new product
// @Description Adds a product to the catalog under a caller-supplied id
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to register"
// @Success 201 {object} IdResponse
// @Failure 400 {array} ValidationError
// @Router /product [put]
func RegisterProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		ID:       *req.Id,
		Name:     *req.Name,
		Category: *req.Category,
		Price:    *req.Price,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateProductID) {
			http.Error(w, "product with this id already exists", http.StatusBadRequest)
			return
		}
		http.Error(w, "could not register product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, IdResponse{Id: created.ID})
}

// GetProductsHandler godoc
// @Summary List products
// @Description Lists all products, optionally filtered by category
// @Tags products
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /product [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := productRepo.GetAll(category)
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = ProductResponse{
			Id:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
		}
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /product/{productId} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	resp := ProductResponse{
		Id:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes the product from the catalog. Warehouse inventory
// @Description referencing the id is left untouched.
// @Tags products
// @Param productId path string true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /product/{productId} [delete]
// @Security BearerAuth
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
