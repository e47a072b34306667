package repo

import "github.com/rogerio-castellano/warehouse-tracker/internal/models"

// StatsRepository defines the read-side aggregate computations. All values
// are computed on demand from current store contents; nothing is cached.
type StatsRepository interface {
	// WarehouseValue sums price * quantity over the warehouse's entries,
	// rounded to two decimal places. Entries whose product no longer exists
	// in the catalog are skipped as join misses, not errors. Returns
	// ErrWarehouseNotFound for an unknown warehouse.
	WarehouseValue(warehouseID string) (float64, error)

	// CapacityStats sums capacity and stocked units across all warehouses.
	// All-zero when no warehouses exist.
	CapacityStats() (models.CapacityStats, error)

	// CategoryCounts groups catalog products by category. Order is
	// unspecified.
	CategoryCounts() ([]models.CategoryCount, error)
}
