package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/warehouse-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/warehouse-tracker/internal/models"
)

func TestWarehouseValueEndpoint(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 10.5)
	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)
	mustAddStock(t, r, warehouseID, "sku-1", 4)

	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/value", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ValueResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding value: %v", err)
	}
	if resp.Value != 42.0 {
		t.Errorf("expected value 42.0, got %v", resp.Value)
	}
}

func TestWarehouseValueEndpoint_EmptyWarehouse(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	warehouseID := mustRegisterWarehouse(t, r, "Empty", "Kaunas", 10)

	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/value", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ValueResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding value: %v", err)
	}
	if resp.Value != 0 {
		t.Errorf("expected value 0, got %v", resp.Value)
	}
}

func TestWarehouseValueEndpoint_UnknownWarehouse(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	if w := doJSON(r, http.MethodGet, "/warehouses/missing/value", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestWarehouseValueEndpoint_SkipsDeletedProducts(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 10.5)
	mustRegisterProduct(t, r, "sku-2", "Saw", "tools", 99)
	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)
	mustAddStock(t, r, warehouseID, "sku-1", 4)
	mustAddStock(t, r, warehouseID, "sku-2", 1)

	if w := doJSON(r, http.MethodDelete, "/product/sku-2", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/value", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ValueResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding value: %v", err)
	}
	if resp.Value != 42.0 {
		t.Errorf("expected value 42.0 with dangling entry skipped, got %v", resp.Value)
	}
}

func TestCapacityStatsEndpoint(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	w1 := mustRegisterWarehouse(t, r, "A", "Vilnius", 100)
	w2 := mustRegisterWarehouse(t, r, "B", "Kaunas", 50)
	mustAddStock(t, r, w1, "sku-1", 30)
	mustAddStock(t, r, w2, "sku-1", 50)

	w := doJSON(r, http.MethodGet, "/statistics/warehouses/capacity", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var stats models.CapacityStats
	if err := json.NewDecoder(w.Body).Decode(&stats); err != nil {
		t.Fatalf("error decoding stats: %v", err)
	}

	want := models.CapacityStats{TotalCapacity: 150, UsedCapacity: 80, FreeCapacity: 70}
	if stats != want {
		t.Errorf("expected %+v, got %+v", want, stats)
	}
}

func TestCategoryCountsEndpoint(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	mustRegisterProduct(t, r, "sku-2", "Saw", "tools", 14.5)
	mustRegisterProduct(t, r, "sku-3", "Bread", "food", 1.2)

	w := doJSON(r, http.MethodGet, "/statistics/products/by/category", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var counts []models.CategoryCount
	if err := json.NewDecoder(w.Body).Decode(&counts); err != nil {
		t.Fatalf("error decoding counts: %v", err)
	}

	byCategory := map[string]int{}
	for _, c := range counts {
		byCategory[c.Category] = c.Count
	}
	if byCategory["tools"] != 2 || byCategory["food"] != 1 {
		t.Errorf("expected tools=2 food=1, got %v", byCategory)
	}
}

func TestCleanupEndpoint(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)
	mustAddStock(t, r, warehouseID, "sku-1", 5)

	w := doJSON(r, http.MethodPost, "/cleanup", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	if w := doJSON(r, http.MethodGet, "/product/sku-1", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found for product after cleanup, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found for warehouse after cleanup, got %d", w.Code)
	}

	w = doJSON(r, http.MethodGet, "/product", nil)
	var products []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding products: %v", err)
	}
	if len(products) != 0 {
		t.Errorf("expected empty catalog after cleanup, got %d products", len(products))
	}
}
