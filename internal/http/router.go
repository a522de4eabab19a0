package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/estolo/spaza-backend/docs"
	"github.com/estolo/spaza-backend/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", handlers.RootHandler)
	r.Get("/health", handlers.HealthHandler)
	r.Get("/health/db", handlers.HealthDBHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", handlers.GetProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Get("/sales", handlers.GetSalesHandler)
		r.Post("/sales", handlers.CreateSaleHandler)
		r.Put("/sales/{id}", handlers.UpdateSaleHandler)
		r.Delete("/sales/{id}", handlers.DeleteSaleHandler)

		r.Get("/categories", handlers.GetCategoriesHandler)
		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

		r.Get("/suppliers", handlers.GetSuppliersHandler)
		r.Post("/suppliers", handlers.CreateSupplierHandler)
		r.Put("/suppliers/{id}", handlers.UpdateSupplierHandler)
		r.Delete("/suppliers/{id}", handlers.DeleteSupplierHandler)

		r.Get("/analytics/demand", handlers.GetDemandPredictionHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
