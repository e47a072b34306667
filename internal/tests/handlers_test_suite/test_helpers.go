package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/warehouse-tracker/internal/http"
	handler "github.com/rogerio-castellano/warehouse-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/warehouse-tracker/internal/repo"
)

var (
	productRepo   *repo.InMemoryProductRepository
	warehouseRepo *repo.InMemoryWarehouseRepository
)

func init() {
	setupTestRepos()
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	warehouseRepo = repo.NewInMemoryWarehouseRepository()
	handler.SetWarehouseRepo(warehouseRepo)

	statsRepo := repo.NewInMemoryStatsRepository()
	statsRepo.SetRepositories(productRepo, warehouseRepo)
	handler.SetStatsRepo(statsRepo)

	handler.SetUserRepo(repo.NewInMemoryUserRepository())
}

func clearAll() {
	productRepo.Clear()
	warehouseRepo.Clear()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, _ := json.Marshal(payload)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerProduct(r http.Handler, id, name, category string, price float64) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, "/product", map[string]any{
		"id":       id,
		"name":     name,
		"category": category,
		"price":    price,
	})
}

func registerWarehouse(r http.Handler, name, location string, capacity int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, "/warehouses", map[string]any{
		"name":     name,
		"location": location,
		"capacity": capacity,
	})
}

func addStock(r http.Handler, warehouseID, productID string, quantity int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPut, "/warehouses/"+warehouseID+"/inventory", map[string]any{
		"productId": productID,
		"quantity":  quantity,
	})
}

func decodeID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.IdResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding id response: %v", err)
	}
	if resp.Id == "" {
		t.Fatal("expected a non-empty id")
	}
	return resp.Id
}

func mustRegisterProduct(t *testing.T, r http.Handler, id, name, category string, price float64) {
	t.Helper()
	if w := registerProduct(r, id, name, category, price); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for product registration, got %d", w.Code)
	}
}

func mustRegisterWarehouse(t *testing.T, r http.Handler, name, location string, capacity int) string {
	t.Helper()
	w := registerWarehouse(r, name, location, capacity)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for warehouse registration, got %d", w.Code)
	}
	return decodeID(t, w)
}

func mustAddStock(t *testing.T, r http.Handler, warehouseID, productID string, quantity int) string {
	t.Helper()
	w := addStock(r, warehouseID, productID, quantity)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for add stock, got %d", w.Code)
	}
	return decodeID(t, w)
}

func newRouter() http.Handler {
	return api.NewRouter()
}
