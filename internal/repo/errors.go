package repo

import "errors"

var (
	// ErrProductNotFound is returned when a product id has no catalog record.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateProductID is returned when registering a product whose id
	// is already taken.
	ErrDuplicateProductID = errors.New("product with this id already exists")

	// ErrWarehouseNotFound is returned when a warehouse id has no record.
	ErrWarehouseNotFound = errors.New("warehouse not found")

	// ErrEntryNotFound is returned when a warehouse has no inventory entry
	// with the given id.
	ErrEntryNotFound = errors.New("inventory entry not found")

	// ErrInvalidQuantity is returned when a stock addition carries a
	// non-positive quantity. No entry with quantity <= 0 may persist.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrUserNotFound is returned when a username has no account.
	ErrUserNotFound = errors.New("user not found")
)
