package repo

import (
	"errors"

	"github.com/rogerio-castellano/warehouse-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// InMemoryStatsRepository computes aggregates by walking the product and
// warehouse repositories it is wired to.
type InMemoryStatsRepository struct {
	productRepo   ProductRepository
	warehouseRepo WarehouseRepository
}

func NewInMemoryStatsRepository() *InMemoryStatsRepository {
	return &InMemoryStatsRepository{}
}

func (s *InMemoryStatsRepository) SetRepositories(products ProductRepository, warehouses WarehouseRepository) {
	s.productRepo = products
	s.warehouseRepo = warehouses
}

// WarehouseValue implements StatsRepository.
func (s *InMemoryStatsRepository) WarehouseValue(warehouseID string) (float64, error) {
	entries, err := s.warehouseRepo.ListInventory(warehouseID)
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, e := range entries {
		product, err := s.productRepo.GetByID(e.ProductID)
		if errors.Is(err, ErrProductNotFound) {
			// The product was deleted after stocking; a join miss, not an error.
			continue
		}
		if err != nil {
			return 0, err
		}
		price := decimal.NewFromFloat(product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(e.Quantity))))
	}
	return total.Round(2).InexactFloat64(), nil
}

// CapacityStats implements StatsRepository.
func (s *InMemoryStatsRepository) CapacityStats() (models.CapacityStats, error) {
	warehouses, err := s.warehouseRepo.GetAll()
	if err != nil {
		return models.CapacityStats{}, err
	}

	stats := models.CapacityStats{}
	for _, w := range warehouses {
		stats.TotalCapacity += w.Capacity
		for _, e := range w.Inventory {
			stats.UsedCapacity += e.Quantity
		}
	}
	stats.FreeCapacity = stats.TotalCapacity - stats.UsedCapacity
	return stats, nil
}

// CategoryCounts implements StatsRepository.
func (s *InMemoryStatsRepository) CategoryCounts() ([]models.CategoryCount, error) {
	products, err := s.productRepo.GetAll("")
	if err != nil {
		return nil, err
	}

	counts := map[string]int{}
	for _, p := range products {
		counts[p.Category]++
	}

	result := []models.CategoryCount{}
	for category, count := range counts {
		result = append(result, models.CategoryCount{Category: category, Count: count})
	}
	return result, nil
}
