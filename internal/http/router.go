package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/warehouse-tracker/docs"
	"github.com/rogerio-castellano/warehouse-tracker/internal/http/handlers"
)

// Options toggles the boundary middlewares. Both default to off, which
// matches the open wire contract of the API.
type Options struct {
	AuthRequired     bool
	RateLimitEnabled bool
}

func NewRouter() http.Handler {
	return NewRouterWithOptions(Options{})
}

func NewRouterWithOptions(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if opts.RateLimitEnabled {
		r.Use(RateLimit)
	}

	r.Post("/register", handlers.RegisterHandler)
	r.Post("/login", handlers.LoginHandler)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/product", handlers.GetProductsHandler)
	r.Get("/product/{productId}", handlers.GetProductByIDHandler)
	r.Get("/warehouses/{warehouseId}", handlers.GetWarehouseHandler)
	r.Get("/warehouses/{warehouseId}/inventory", handlers.ListInventoryHandler)
	r.Get("/warehouses/{warehouseId}/inventory/{inventoryId}", handlers.GetInventoryEntryHandler)
	r.Get("/warehouses/{warehouseId}/value", handlers.WarehouseValueHandler)
	r.Get("/statistics/warehouses/capacity", handlers.CapacityStatsHandler)
	r.Get("/statistics/products/by/category", handlers.CategoryCountsHandler)

	r.Group(func(g chi.Router) {
		if opts.AuthRequired {
			g.Use(AuthMiddleware)
		}
		g.Put("/product", handlers.RegisterProductHandler)
		g.Delete("/product/{productId}", handlers.DeleteProductHandler)
		g.Put("/warehouses", handlers.RegisterWarehouseHandler)
		g.Delete("/warehouses/{warehouseId}", handlers.DeleteWarehouseHandler)
		g.Put("/warehouses/{warehouseId}/inventory", handlers.AddStockHandler)
		g.Delete("/warehouses/{warehouseId}/inventory/{inventoryId}", handlers.RemoveInventoryEntryHandler)
		g.Post("/cleanup", handlers.CleanupHandler)
	})

	return r
}
