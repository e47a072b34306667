package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/warehouse-tracker/internal/http/handlers"
)

func TestRegisterProduct(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := registerProduct(r, "sku-1", "Hammer", "tools", 9.99)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	if id := decodeID(t, w); id != "sku-1" {
		t.Errorf("expected echoed id %q, got %q", "sku-1", id)
	}
}

func TestRegisterProduct_DuplicateID(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)

	w := registerProduct(r, "sku-1", "Other hammer", "tools", 5)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for duplicate id, got %d", w.Code)
	}
}

func TestRegisterProduct_MissingFields(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doJSON(r, http.MethodPut, "/product", map[string]any{"id": "sku-1"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	var validationErrors []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&validationErrors); err != nil {
		t.Fatalf("error decoding validation errors: %v", err)
	}
	if len(validationErrors) == 0 {
		t.Error("expected at least one validation error")
	}
}

func TestRegisterProduct_NegativePrice(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := registerProduct(r, "sku-1", "Hammer", "tools", -1)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request for negative price, got %d", w.Code)
	}
}

func TestGetProducts_CategoryFilter(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	mustRegisterProduct(t, r, "sku-2", "Saw", "tools", 14.5)
	mustRegisterProduct(t, r, "sku-3", "Bread", "food", 1.2)

	w := doJSON(r, http.MethodGet, "/product?category=tools", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var products []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding products: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("expected 2 tools, got %d", len(products))
	}
	for _, p := range products {
		if p.Category != "tools" {
			t.Errorf("unexpected category %q in filtered listing", p.Category)
		}
	}
}

func TestGetProductByID(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)

	w := doJSON(r, http.MethodGet, "/product/sku-1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var p handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&p); err != nil {
		t.Fatalf("error decoding product: %v", err)
	}
	if p.Id != "sku-1" || p.Name != "Hammer" || p.Category != "tools" || p.Price != 9.99 {
		t.Errorf("unexpected product %+v", p)
	}

	if w := doJSON(r, http.MethodGet, "/product/missing", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found for unknown product, got %d", w.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)

	if w := doJSON(r, http.MethodDelete, "/product/sku-1", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/product/sku-1", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found after delete, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, "/product/sku-1", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found on second delete, got %d", w.Code)
	}
}
