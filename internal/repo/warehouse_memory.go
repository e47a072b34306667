package repo

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/warehouse-tracker/internal/models"
)

// InMemoryWarehouseRepository is an in-memory implementation of
// WarehouseRepository. A single mutex serializes ledger mutations so two
// concurrent restocks of the same warehouse cannot overwrite each other.
type InMemoryWarehouseRepository struct {
	mu         sync.RWMutex
	warehouses []models.Warehouse
}

// NewInMemoryWarehouseRepository creates a new instance of InMemoryWarehouseRepository.
func NewInMemoryWarehouseRepository() *InMemoryWarehouseRepository {
	return &InMemoryWarehouseRepository{
		warehouses: []models.Warehouse{},
	}
}

// Create stores a warehouse under a generated id with an empty inventory.
func (r *InMemoryWarehouseRepository) Create(warehouse models.Warehouse) (models.Warehouse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	warehouse.ID = uuid.NewString()
	warehouse.Inventory = []models.InventoryEntry{}
	r.warehouses = append(r.warehouses, warehouse)
	return warehouse, nil
}

// GetByID retrieves a warehouse by its ID.
func (r *InMemoryWarehouseRepository) GetByID(id string) (models.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.warehouses {
		if w.ID == id {
			out := w
			out.Inventory = append([]models.InventoryEntry{}, w.Inventory...)
			return out, nil
		}
	}
	return models.Warehouse{}, ErrWarehouseNotFound
}

// GetAll returns every warehouse with a copy of its inventory.
func (r *InMemoryWarehouseRepository) GetAll() ([]models.Warehouse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Warehouse, len(r.warehouses))
	for i, w := range r.warehouses {
		out := w
		out.Inventory = append([]models.InventoryEntry{}, w.Inventory...)
		result[i] = out
	}
	return result, nil
}

// Delete removes a warehouse and all its inventory entries.
func (r *InMemoryWarehouseRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, w := range r.warehouses {
		if w.ID == id {
			r.warehouses = append(r.warehouses[:i], r.warehouses[i+1:]...)
			return nil
		}
	}
	return ErrWarehouseNotFound
}

// AddStock merges quantity into the entry for productID, appending a new
// entry when the product is not yet stocked.
func (r *InMemoryWarehouseRepository) AddStock(warehouseID, productID string, quantity int) (string, error) {
	if quantity <= 0 {
		return "", ErrInvalidQuantity
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, w := range r.warehouses {
		if w.ID != warehouseID {
			continue
		}
		for j, e := range w.Inventory {
			if e.ProductID == productID {
				r.warehouses[i].Inventory[j].Quantity += quantity
				return e.ID, nil
			}
		}
		entry := models.InventoryEntry{
			ID:        uuid.NewString(),
			ProductID: productID,
			Quantity:  quantity,
		}
		r.warehouses[i].Inventory = append(r.warehouses[i].Inventory, entry)
		return entry.ID, nil
	}
	return "", ErrWarehouseNotFound
}

// ListInventory returns all entries of the warehouse in ledger order.
func (r *InMemoryWarehouseRepository) ListInventory(warehouseID string) ([]models.InventoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.warehouses {
		if w.ID == warehouseID {
			return append([]models.InventoryEntry{}, w.Inventory...), nil
		}
	}
	return nil, ErrWarehouseNotFound
}

// GetEntry retrieves a single inventory entry by its id.
func (r *InMemoryWarehouseRepository) GetEntry(warehouseID, entryID string) (models.InventoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, w := range r.warehouses {
		if w.ID == warehouseID {
			for _, e := range w.Inventory {
				if e.ID == entryID {
					return e, nil
				}
			}
			return models.InventoryEntry{}, ErrEntryNotFound
		}
	}
	return models.InventoryEntry{}, ErrWarehouseNotFound
}

// RemoveEntry filters the entry out of the warehouse's ledger. Removal is
// all-or-nothing per entry; there is no quantity-decrement variant.
func (r *InMemoryWarehouseRepository) RemoveEntry(warehouseID, entryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, w := range r.warehouses {
		if w.ID == warehouseID {
			for j, e := range w.Inventory {
				if e.ID == entryID {
					r.warehouses[i].Inventory = append(w.Inventory[:j], w.Inventory[j+1:]...)
					return nil
				}
			}
			return ErrEntryNotFound
		}
	}
	return ErrWarehouseNotFound
}

// Clear removes every warehouse together with its entries.
func (r *InMemoryWarehouseRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.warehouses = []models.Warehouse{}
	return nil
}
