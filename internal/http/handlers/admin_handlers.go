package handlers

import "net/http"

// CleanupHandler godoc
// @Summary Full reset
// @Description Clears all products and warehouses (inventory entries go with
// @Description their warehouses)
// @Tags admin
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 500 {string} string "Internal error"
// @Router /cleanup [post]
// @Security BearerAuth
func CleanupHandler(w http.ResponseWriter, r *http.Request) {
	if err := warehouseRepo.Clear(); err != nil {
		http.Error(w, "could not clear warehouses", http.StatusInternalServerError)
		return
	}
	if err := productRepo.Clear(); err != nil {
		http.Error(w, "could not clear products", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "cleanup completed"})
}
