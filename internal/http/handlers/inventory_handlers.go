package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	repo "github.com/rogerio-castellano/warehouse-tracker/internal/repo"
)

// AddStockHandler godoc
// @Summary Add stock to a warehouse
// @Description Merges the quantity into the warehouse's entry for the product.
// @Description Restocking an already stocked product increments the existing
// @Description entry and keeps its id; otherwise a new entry is created.
// @Tags inventory
// @Accept json
// @Produce json
// @Param warehouseId path string true "Warehouse ID"
// @Param stock body AddStockRequest true "Product and quantity to add"
// @Success 200 {object} IdResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Unknown product or warehouse"
// @Failure 500 {string} string "Internal error"
// @Router /warehouses/{warehouseId}/inventory [put]
// @Security BearerAuth
func AddStockHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID := chi.URLParam(r, "warehouseId")

	var req AddStockRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateAddStock(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	// The product must exist in the catalog at stocking time. It is not
	// re-validated later; deleting the product afterwards leaves a
	// dangling reference by design.
	if _, err := productRepo.GetByID(*req.ProductId); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not verify product", http.StatusInternalServerError)
		return
	}

	entryID, err := warehouseRepo.AddStock(warehouseID, *req.ProductId, *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrWarehouseNotFound):
			http.Error(w, "warehouse not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrInvalidQuantity):
			http.Error(w, "quantity must be a positive integer", http.StatusBadRequest)
		default:
			http.Error(w, "could not add stock", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, IdResponse{Id: entryID})
}

// ListInventoryHandler godoc
// @Summary List a warehouse's inventory
// @Tags inventory
// @Produce json
// @Param warehouseId path string true "Warehouse ID"
// @Success 200 {array} InventoryEntryResponse
// @Failure 404 {string} string "Warehouse not found"
// @Failure 500 {string} string "Internal error"
// @Router /warehouses/{warehouseId}/inventory [get]
func ListInventoryHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID := chi.URLParam(r, "warehouseId")

	entries, err := warehouseRepo.ListInventory(warehouseID)
	if err != nil {
		if errors.Is(err, repo.ErrWarehouseNotFound) {
			http.Error(w, "warehouse not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch inventory", http.StatusInternalServerError)
		return
	}

	response := make([]InventoryEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = InventoryEntryResponse{
			Id:        e.ID,
			ProductId: e.ProductID,
			Quantity:  e.Quantity,
		}
	}
	if err := writeJSON(w, http.StatusOK, response); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// GetInventoryEntryHandler godoc
// @Summary Get a single inventory entry
// @Tags inventory
// @Produce json
// @Param warehouseId path string true "Warehouse ID"
// @Param inventoryId path string true "Inventory entry ID"
// @Success 200 {object} InventoryEntryResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /warehouses/{warehouseId}/inventory/{inventoryId} [get]
func GetInventoryEntryHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID := chi.URLParam(r, "warehouseId")
	entryID := chi.URLParam(r, "inventoryId")

	entry, err := warehouseRepo.GetEntry(warehouseID, entryID)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrWarehouseNotFound):
			http.Error(w, "warehouse not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrEntryNotFound):
			http.Error(w, "inventory entry not found", http.StatusNotFound)
		default:
			http.Error(w, "could not fetch inventory entry", http.StatusInternalServerError)
		}
		return
	}

	resp := InventoryEntryResponse{
		Id:        entry.ID,
		ProductId: entry.ProductID,
		Quantity:  entry.Quantity,
	}
	writeJSON(w, http.StatusOK, resp)
}

// RemoveInventoryEntryHandler godoc
// @Summary Remove an inventory entry
// @Description Removes the whole entry; there is no partial removal by quantity
// @Tags inventory
// @Param warehouseId path string true "Warehouse ID"
// @Param inventoryId path string true "Inventory entry ID"
// @Success 204 "Removed successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /warehouses/{warehouseId}/inventory/{inventoryId} [delete]
// @Security BearerAuth
func RemoveInventoryEntryHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID := chi.URLParam(r, "warehouseId")
	entryID := chi.URLParam(r, "inventoryId")

	if err := warehouseRepo.RemoveEntry(warehouseID, entryID); err != nil {
		switch {
		case errors.Is(err, repo.ErrWarehouseNotFound):
			http.Error(w, "warehouse not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrEntryNotFound):
			http.Error(w, "inventory entry not found", http.StatusNotFound)
		default:
			http.Error(w, "could not remove inventory entry", http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
