package handlers

import "strings"

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if p.Id == nil || strings.TrimSpace(*p.Id) == "" {
		errs = append(errs, ValidationError{Field: "id", Description: "id is required"})
	}
	if p.Name == nil || strings.TrimSpace(*p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name is required"})
	}
	if p.Category == nil || strings.TrimSpace(*p.Category) == "" {
		errs = append(errs, ValidationError{Field: "category", Description: "category is required"})
	}
	if p.Price == nil {
		errs = append(errs, ValidationError{Field: "price", Description: "price is required"})
	} else if *p.Price < 0 {
		errs = append(errs, ValidationError{Field: "price", Description: "price cannot be negative"})
	}
	return errs
}

func validateWarehouse(w WarehouseRequest) []ValidationError {
	errs := []ValidationError{}
	if w.Name == nil || strings.TrimSpace(*w.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "name is required"})
	}
	if w.Location == nil || strings.TrimSpace(*w.Location) == "" {
		errs = append(errs, ValidationError{Field: "location", Description: "location is required"})
	}
	if w.Capacity == nil {
		errs = append(errs, ValidationError{Field: "capacity", Description: "capacity is required"})
	} else if *w.Capacity < 0 {
		errs = append(errs, ValidationError{Field: "capacity", Description: "capacity cannot be negative"})
	}
	return errs
}

func validateAddStock(s AddStockRequest) []ValidationError {
	errs := []ValidationError{}
	if s.ProductId == nil || strings.TrimSpace(*s.ProductId) == "" {
		errs = append(errs, ValidationError{Field: "productId", Description: "productId is required"})
	}
	if s.Quantity == nil {
		errs = append(errs, ValidationError{Field: "quantity", Description: "quantity is required"})
	} else if *s.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "quantity", Description: "quantity must be a positive integer"})
	}
	return errs
}
