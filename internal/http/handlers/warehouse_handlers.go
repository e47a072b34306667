package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	models "github.com/rogerio-castellano/warehouse-tracker/internal/models"
	repo "github.com/rogerio-castellano/warehouse-tracker/internal/repo"
)

// RegisterWarehouseHandler godoc
// @Summary Register a new warehouse
// @Description Creates a warehouse with an empty inventory and returns its generated id
// @Tags warehouses
// @Accept json
// @Produce json
// @Param warehouse body WarehouseRequest true "Warehouse to register"
// @Success 201 {object} IdResponse
// @Failure 400 {array} ValidationError
// @Router /warehouses [put]
func RegisterWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	var req WarehouseRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateWarehouse(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	warehouse := models.Warehouse{
		Name:     *req.Name,
		Location: *req.Location,
		Capacity: *req.Capacity,
	}
	created, err := warehouseRepo.Create(warehouse)
	if err != nil {
		http.Error(w, "could not register warehouse", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, IdResponse{Id: created.ID})
}

// GetWarehouseHandler godoc
// @Summary Get warehouse by ID
// @Tags warehouses
// @Produce json
// @Param warehouseId path string true "Warehouse ID"
// @Success 200 {object} WarehouseResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /warehouses/{warehouseId} [get]
func GetWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "warehouseId")

	warehouse, err := warehouseRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrWarehouseNotFound) {
			http.Error(w, "warehouse not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch warehouse", http.StatusInternalServerError)
		return
	}

	resp := WarehouseResponse{
		Id:       warehouse.ID,
		Name:     warehouse.Name,
		Location: warehouse.Location,
		Capacity: warehouse.Capacity,
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteWarehouseHandler godoc
// @Summary Delete a warehouse
// @Description Removes the warehouse together with all its inventory entries
// @Tags warehouses
// @Param warehouseId path string true "Warehouse ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /warehouses/{warehouseId} [delete]
// @Security BearerAuth
func DeleteWarehouseHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "warehouseId")

	if err := warehouseRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrWarehouseNotFound) {
			http.Error(w, "warehouse not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete warehouse", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
