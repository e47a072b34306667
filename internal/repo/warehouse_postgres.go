package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	models "github.com/rogerio-castellano/warehouse-tracker/internal/models"
)

type PostgresWarehouseRepository struct {
	db *sql.DB
}

func NewPostgresWarehouseRepository(db *sql.DB) *PostgresWarehouseRepository {
	return &PostgresWarehouseRepository{db: db}
}

func (r *PostgresWarehouseRepository) Create(w models.Warehouse) (models.Warehouse, error) {
	query := `INSERT INTO warehouses (id, name, location, capacity) VALUES ($1, $2, $3, $4)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	w.ID = uuid.NewString()
	w.Inventory = []models.InventoryEntry{}
	_, err := r.db.ExecContext(ctx, query, w.ID, w.Name, w.Location, w.Capacity)
	if err != nil {
		return models.Warehouse{}, err
	}
	return w, nil
}

func (r *PostgresWarehouseRepository) GetByID(id string) (models.Warehouse, error) {
	query := `SELECT id, name, location, capacity FROM warehouses WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var w models.Warehouse
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Name, &w.Location, &w.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Warehouse{}, ErrWarehouseNotFound
	}
	return w, err
}

func (r *PostgresWarehouseRepository) GetAll() ([]models.Warehouse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, name, location, capacity FROM warehouses`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	warehouses := []models.Warehouse{}
	index := map[string]int{}
	for rows.Next() {
		var w models.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Location, &w.Capacity); err != nil {
			return nil, err
		}
		w.Inventory = []models.InventoryEntry{}
		index[w.ID] = len(warehouses)
		warehouses = append(warehouses, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entryRows, err := r.db.QueryContext(ctx, `SELECT warehouse_id, id, product_id, quantity FROM inventory_entries ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var warehouseID string
		var e models.InventoryEntry
		if err := entryRows.Scan(&warehouseID, &e.ID, &e.ProductID, &e.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[warehouseID]; ok {
			warehouses[i].Inventory = append(warehouses[i].Inventory, e)
		}
	}
	return warehouses, entryRows.Err()
}

// Delete removes the warehouse; its inventory entries go with it via
// ON DELETE CASCADE.
func (r *PostgresWarehouseRepository) Delete(id string) error {
	query := `DELETE FROM warehouses WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrWarehouseNotFound
	}
	return nil
}

// AddStock is a single upsert: the UNIQUE(warehouse_id, product_id)
// constraint makes the increment-or-append atomic, so concurrent restocks
// of the same warehouse cannot lose updates. The pre-minted id is only
// used when a new row is inserted; on a merge the existing id is returned.
func (r *PostgresWarehouseRepository) AddStock(warehouseID, productID string, quantity int) (string, error) {
	if quantity <= 0 {
		return "", ErrInvalidQuantity
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM warehouses WHERE id = $1)`, warehouseID).Scan(&exists)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrWarehouseNotFound
	}

	query := `
		INSERT INTO inventory_entries (id, warehouse_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (warehouse_id, product_id)
		DO UPDATE SET quantity = inventory_entries.quantity + EXCLUDED.quantity
		RETURNING id
	`
	var entryID string
	err = r.db.QueryRowContext(ctx, query, uuid.NewString(), warehouseID, productID, quantity).Scan(&entryID)
	if err != nil {
		return "", err
	}
	return entryID, nil
}

func (r *PostgresWarehouseRepository) ListInventory(warehouseID string) ([]models.InventoryEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM warehouses WHERE id = $1)`, warehouseID).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrWarehouseNotFound
	}

	query := `SELECT id, product_id, quantity FROM inventory_entries WHERE warehouse_id = $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, warehouseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.InventoryEntry{}
	for rows.Next() {
		var e models.InventoryEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Quantity); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresWarehouseRepository) GetEntry(warehouseID, entryID string) (models.InventoryEntry, error) {
	query := `SELECT id, product_id, quantity FROM inventory_entries WHERE warehouse_id = $1 AND id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var e models.InventoryEntry
	err := r.db.QueryRowContext(ctx, query, warehouseID, entryID).Scan(&e.ID, &e.ProductID, &e.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryEntry{}, r.missingEntryErr(ctx, warehouseID)
	}
	return e, err
}

func (r *PostgresWarehouseRepository) RemoveEntry(warehouseID, entryID string) error {
	query := `DELETE FROM inventory_entries WHERE warehouse_id = $1 AND id = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, warehouseID, entryID)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return r.missingEntryErr(ctx, warehouseID)
	}
	return nil
}

func (r *PostgresWarehouseRepository) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM warehouses`)
	return err
}

// missingEntryErr tells a missing warehouse apart from a missing entry.
func (r *PostgresWarehouseRepository) missingEntryErr(ctx context.Context, warehouseID string) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM warehouses WHERE id = $1)`, warehouseID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrWarehouseNotFound
	}
	return ErrEntryNotFound
}
