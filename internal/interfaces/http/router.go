package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/ingest"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IngestUC *ingest.UseCase
	StoreUC  *usecase.StoreUseCase
	Log      zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ingestas (una corrida a la vez por tienda)
	ingestions := api.Group("/ingestions")
	ingestionHandler := NewIngestionHandler(deps.IngestUC, NewStoreLocks(), deps.Log)
	ingestions.Post("/", ingestionHandler.Run)
	ingestions.Post("/preview", ingestionHandler.Preview)

	// Tiendas
	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:store/inventory", storeHandler.Inventory)
}
