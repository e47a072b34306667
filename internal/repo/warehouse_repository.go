package repo

import "github.com/rogerio-castellano/warehouse-tracker/internal/models"

// WarehouseRepository defines the interface for warehouse and inventory
// ledger operations. Each warehouse owns its inventory entries; deleting a
// warehouse removes them with it.
type WarehouseRepository interface {
	// Create stores the warehouse with a freshly generated id and an empty
	// inventory, and returns the stored record.
	Create(warehouse models.Warehouse) (models.Warehouse, error)
	GetByID(id string) (models.Warehouse, error)
	// GetAll returns every warehouse with its inventory loaded. Used by the
	// aggregate computations.
	GetAll() ([]models.Warehouse, error)
	Delete(id string) error

	// AddStock merges quantity into the warehouse's entry for productID.
	// If an entry already exists its quantity is incremented and its id is
	// preserved; otherwise a new entry with a generated id is appended.
	// The entry id is returned in both cases. Callers are expected to have
	// checked that the product exists in the catalog.
	AddStock(warehouseID, productID string, quantity int) (string, error)

	ListInventory(warehouseID string) ([]models.InventoryEntry, error)
	GetEntry(warehouseID, entryID string) (models.InventoryEntry, error)
	RemoveEntry(warehouseID, entryID string) error

	Clear() error
}
