package handlers

import (
	repo "github.com/rogerio-castellano/warehouse-tracker/internal/repo"
)

var (
	productRepo   repo.ProductRepository
	warehouseRepo repo.WarehouseRepository
	statsRepo     repo.StatsRepository
	userRepo      repo.UserRepository
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetWarehouseRepo(r repo.WarehouseRepository) {
	warehouseRepo = r
}

func SetStatsRepo(r repo.StatsRepository) {
	statsRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}
