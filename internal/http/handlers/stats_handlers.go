package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	repo "github.com/rogerio-castellano/warehouse-tracker/internal/repo"
)

// WarehouseValueHandler godoc
// @Summary Total value of a warehouse's stock
// @Description Sums price x quantity over all entries, rounded to two decimal
// @Description places. Entries whose product was deleted are skipped.
// @Tags statistics
// @Produce json
// @Param warehouseId path string true "Warehouse ID"
// @Success 200 {object} ValueResponse
// @Failure 404 {string} string "Warehouse not found"
// @Failure 500 {string} string "Internal error"
// @Router /warehouses/{warehouseId}/value [get]
func WarehouseValueHandler(w http.ResponseWriter, r *http.Request) {
	warehouseID := chi.URLParam(r, "warehouseId")

	value, err := statsRepo.WarehouseValue(warehouseID)
	if err != nil {
		if errors.Is(err, repo.ErrWarehouseNotFound) {
			http.Error(w, "warehouse not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not compute warehouse value", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ValueResponse{Value: value})
}

// CapacityStatsHandler godoc
// @Summary Capacity statistics across all warehouses
// @Tags statistics
// @Produce json
// @Success 200 {object} models.CapacityStats
// @Failure 500 {string} string "Internal error"
// @Router /statistics/warehouses/capacity [get]
func CapacityStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := statsRepo.CapacityStats()
	if err != nil {
		http.Error(w, "could not compute capacity statistics", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// CategoryCountsHandler godoc
// @Summary Product counts per category
// @Tags statistics
// @Produce json
// @Success 200 {array} models.CategoryCount
// @Failure 500 {string} string "Internal error"
// @Router /statistics/products/by/category [get]
func CategoryCountsHandler(w http.ResponseWriter, r *http.Request) {
	counts, err := statsRepo.CategoryCounts()
	if err != nil {
		http.Error(w, "could not compute category counts", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, counts); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
