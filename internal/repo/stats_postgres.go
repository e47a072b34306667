package repo

import (
	"context"
	"database/sql"
	"time"

	models "github.com/rogerio-castellano/warehouse-tracker/internal/models"
)

// PostgresStatsRepository pushes the aggregate computations down to SQL.
type PostgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

// WarehouseValue implements StatsRepository. Entries without a matching
// catalog product drop out of the inner join, mirroring the join-miss rule.
func (r *PostgresStatsRepository) WarehouseValue(warehouseID string) (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM warehouses WHERE id = $1)`, warehouseID).Scan(&exists)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrWarehouseNotFound
	}

	query := `
		SELECT COALESCE(ROUND(SUM(p.price * e.quantity)::numeric, 2), 0)
		FROM inventory_entries e
		JOIN products p ON p.id = e.product_id
		WHERE e.warehouse_id = $1
	`
	var value float64
	err = r.db.QueryRowContext(ctx, query, warehouseID).Scan(&value)
	return value, err
}

// CapacityStats implements StatsRepository.
func (r *PostgresStatsRepository) CapacityStats() (models.CapacityStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	query := `
		SELECT
			COALESCE((SELECT SUM(capacity) FROM warehouses), 0),
			COALESCE((SELECT SUM(quantity) FROM inventory_entries), 0)
	`
	var stats models.CapacityStats
	if err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalCapacity, &stats.UsedCapacity); err != nil {
		return models.CapacityStats{}, err
	}
	stats.FreeCapacity = stats.TotalCapacity - stats.UsedCapacity
	return stats, nil
}

// CategoryCounts implements StatsRepository.
func (r *PostgresStatsRepository) CategoryCounts() ([]models.CategoryCount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT category, COUNT(*) FROM products GROUP BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.CategoryCount{}
	for rows.Next() {
		var c models.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
