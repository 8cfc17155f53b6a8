package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/auth"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	SalesChannelUC  *usecase.SalesChannelUseCase
	ProfitabilityUC *usecase.ProfitabilityUseCase
	JWTSecret       string
}

// Router registra las rutas de la API. Todos los roles leen; sólo admin y
// vendedor modifican productos y canales.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	channelHandler := NewChannelHandler(deps.SalesChannelUC)
	productHandler := NewProductHandler(deps.ProductUC)
	profitHandler := NewProfitabilityHandler(deps.ProfitabilityUC)
	authHandler := NewAuthHandler(deps.AuthUC)

	// Catálogo (público)
	api.Get("/channels", channelHandler.Catalog)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	canEdit := RequireRole(jwt.RoleAdmin, jwt.RoleSeller)
	canRead := RequireRole(jwt.RoleAdmin, jwt.RoleSeller, jwt.RoleAnalyst)

	protected.Post("/users", RequireRole(jwt.RoleAdmin), authHandler.Register)

	products := protected.Group("/products")
	products.Post("/", canEdit, productHandler.Create)
	products.Get("/", canRead, productHandler.List)
	products.Get("/:id", canRead, productHandler.GetByID)
	products.Put("/:id", canEdit, productHandler.Update)
	products.Delete("/:id", canEdit, productHandler.Delete)

	products.Get("/:id/channels", canRead, channelHandler.List)
	products.Patch("/:id/channels/:type", canEdit, channelHandler.Update)

	products.Get("/:id/channels/:type/profitability", canRead, profitHandler.EvaluateChannel)
	products.Get("/:id/profitability", canRead, profitHandler.EvaluateProduct)
	products.Get("/:id/profitability/report.pdf", canRead, profitHandler.Report)

	protected.Post("/profitability/preview", canRead, profitHandler.Preview)
}
