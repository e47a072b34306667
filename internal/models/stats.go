package models

// CapacityStats aggregates capacity across all warehouses. Used capacity
// counts raw stock units; quantities and capacities are compared as bare
// numbers.
type CapacityStats struct {
	TotalCapacity int `json:"totalCapacity"`
	UsedCapacity  int `json:"usedCapacity"`
	FreeCapacity  int `json:"freeCapacity"`
}

// CategoryCount is the number of catalog products in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
