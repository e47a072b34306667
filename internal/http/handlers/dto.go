package handlers

// Request fields are pointers so that missing fields can be told apart from
// zero values; the boundary owns field-presence validation.

type ProductRequest struct {
	Id       *string  `json:"id"`
	Name     *string  `json:"name"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price"`
}

type WarehouseRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Capacity *int    `json:"capacity"`
}

type AddStockRequest struct {
	ProductId *string `json:"productId"`
	Quantity  *int    `json:"quantity"`
}

type ProductResponse struct {
	Id       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

type WarehouseResponse struct {
	Id       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

type InventoryEntryResponse struct {
	Id        string `json:"id"`
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type IdResponse struct {
	Id string `json:"id"`
}

type ValueResponse struct {
	Value float64 `json:"value"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
