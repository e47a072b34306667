package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/rogerio-castellano/warehouse-tracker/internal/http/handlers"
)

func TestAddStock_MergesByProductID(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)

	firstID := mustAddStock(t, r, warehouseID, "sku-1", 3)
	secondID := mustAddStock(t, r, warehouseID, "sku-1", 4)

	if firstID != secondID {
		t.Errorf("expected restock to keep entry id %q, got %q", firstID, secondID)
	}

	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/inventory", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var entries []handler.InventoryEntryResponse
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("error decoding inventory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry after merge, got %d", len(entries))
	}
	if entries[0].Id != firstID || entries[0].ProductId != "sku-1" || entries[0].Quantity != 7 {
		t.Errorf("unexpected merged entry %+v", entries[0])
	}
}

func TestAddStock_UnknownProduct(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)

	if w := addStock(r, warehouseID, "missing", 3); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found for unknown product, got %d", w.Code)
	}
}

func TestAddStock_UnknownWarehouse(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)

	if w := addStock(r, "missing", "sku-1", 3); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found for unknown warehouse, got %d", w.Code)
	}
}

func TestAddStock_RejectsNonPositiveQuantity(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)

	for _, q := range []int{0, -5} {
		if w := addStock(r, warehouseID, "sku-1", q); w.Code != http.StatusBadRequest {
			t.Errorf("quantity %d: expected 400 Bad Request, got %d", q, w.Code)
		}
	}

	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/inventory", nil)
	var entries []handler.InventoryEntryResponse
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("error decoding inventory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected inventory unchanged, got %d entries", len(entries))
	}
}

func TestAddStock_MissingFields(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)

	w := doJSON(r, http.MethodPut, "/warehouses/"+warehouseID+"/inventory", map[string]any{"quantity": 3})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request without productId, got %d", w.Code)
	}
}

func TestListInventory_EmptyWarehouse(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)

	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/inventory", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for empty inventory, got %d", w.Code)
	}

	var entries []handler.InventoryEntryResponse
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("error decoding inventory: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty list, got %d entries", len(entries))
	}
}

func TestGetInventoryEntry(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)
	entryID := mustAddStock(t, r, warehouseID, "sku-1", 5)

	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/inventory/"+entryID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var entry handler.InventoryEntryResponse
	if err := json.NewDecoder(w.Body).Decode(&entry); err != nil {
		t.Fatalf("error decoding entry: %v", err)
	}
	if entry.Id != entryID || entry.ProductId != "sku-1" || entry.Quantity != 5 {
		t.Errorf("unexpected entry %+v", entry)
	}

	if w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/inventory/missing", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found for unknown entry, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/warehouses/missing/inventory/"+entryID, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found for unknown warehouse, got %d", w.Code)
	}
}

func TestRemoveInventoryEntry(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	mustRegisterProduct(t, r, "sku-2", "Saw", "tools", 14.5)
	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)
	keepID := mustAddStock(t, r, warehouseID, "sku-1", 5)
	dropID := mustAddStock(t, r, warehouseID, "sku-2", 2)

	if w := doJSON(r, http.MethodDelete, "/warehouses/"+warehouseID+"/inventory/"+dropID, nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/inventory", nil)
	var entries []handler.InventoryEntryResponse
	if err := json.NewDecoder(w.Body).Decode(&entries); err != nil {
		t.Fatalf("error decoding inventory: %v", err)
	}
	if len(entries) != 1 || entries[0].Id != keepID {
		t.Errorf("expected only entry %q to remain, got %+v", keepID, entries)
	}

	if w := doJSON(r, http.MethodDelete, "/warehouses/"+warehouseID+"/inventory/"+dropID, nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found on second removal, got %d", w.Code)
	}
}

func TestDeleteProduct_LeavesInventoryEntryDangling(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	mustRegisterProduct(t, r, "sku-1", "Hammer", "tools", 9.99)
	warehouseID := mustRegisterWarehouse(t, r, "Central", "Vilnius", 100)
	entryID := mustAddStock(t, r, warehouseID, "sku-1", 5)

	if w := doJSON(r, http.MethodDelete, "/product/sku-1", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	// The entry still exists and keeps its product reference.
	w := doJSON(r, http.MethodGet, "/warehouses/"+warehouseID+"/inventory/"+entryID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK for dangling entry, got %d", w.Code)
	}

	var entry handler.InventoryEntryResponse
	if err := json.NewDecoder(w.Body).Decode(&entry); err != nil {
		t.Fatalf("error decoding entry: %v", err)
	}
	if entry.ProductId != "sku-1" || entry.Quantity != 5 {
		t.Errorf("unexpected entry %+v", entry)
	}
}
