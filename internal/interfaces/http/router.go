package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pinturas-api/internal/application/auth"
	"github.com/jhoicas/Pinturas-api/internal/application/usecase"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	UserUC           *usecase.UserUseCase
	CustomerUC       *usecase.CustomerUseCase
	PaintOrderUC     *usecase.PaintOrderUseCase
	ServiceRequestUC *usecase.ServiceRequestUseCase
	CatalogUC        *usecase.CatalogUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; el resto exige sesión viva)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/customer-login", authHandler.CustomerLogin)
	authGroup.Post("/logout", AuthMiddleware(deps.AuthUC), authHandler.Logout)
	authGroup.Post("/logout-all", AuthMiddleware(deps.AuthUC), authHandler.LogoutAll)
	authGroup.Get("/me", AuthMiddleware(deps.AuthUC), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token con sesión viva)
	protected := api.Group("/", AuthMiddleware(deps.AuthUC))

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Deactivate)

	// Customers (la propiedad fina la decide el use case)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id/interactions", customerHandler.AddInteraction)
	customers.Get("/:id/interactions", customerHandler.ListInteractions)

	// Paint orders (transiciones autorizadas por el motor de workflow)
	orders := protected.Group("/paint-orders")
	orderHandler := NewPaintOrderHandler(deps.PaintOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Patch("/:id/approve", orderHandler.Approve)
	orders.Patch("/:id/reject", orderHandler.Reject)
	orders.Patch("/:id/assign", orderHandler.Assign)
	orders.Patch("/:id/start", orderHandler.Start)
	orders.Patch("/:id/complete", orderHandler.Complete)
	orders.Patch("/:id/cancel", orderHandler.Cancel)

	// Service requests (mismo ciclo que los pedidos)
	requests := protected.Group("/service-requests")
	requestHandler := NewServiceRequestHandler(deps.ServiceRequestUC)
	requests.Post("/", requestHandler.Create)
	requests.Get("/", requestHandler.List)
	requests.Get("/:id", requestHandler.GetByID)
	requests.Put("/:id", requestHandler.Update)
	requests.Patch("/:id/approve", requestHandler.Approve)
	requests.Patch("/:id/reject", requestHandler.Reject)
	requests.Patch("/:id/assign", requestHandler.Assign)
	requests.Patch("/:id/start", requestHandler.Start)
	requests.Patch("/:id/complete", requestHandler.Complete)
	requests.Patch("/:id/cancel", requestHandler.Cancel)

	// Catálogos (lectura autenticada; escritura solo admin)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	paintTypes := protected.Group("/paint-types")
	paintTypes.Get("/", catalogHandler.ListPaintTypes)
	paintTypes.Get("/:id", catalogHandler.GetPaintType)
	paintTypes.Post("/", RequireRole(entity.RoleAdmin), catalogHandler.CreatePaintType)
	paintTypes.Put("/:id", RequireRole(entity.RoleAdmin), catalogHandler.UpdatePaintType)
	paintTypes.Delete("/:id", RequireRole(entity.RoleAdmin), catalogHandler.DeactivatePaintType)

	machines := protected.Group("/machines")
	machines.Get("/", catalogHandler.ListMachines)
	machines.Get("/:id", catalogHandler.GetMachine)
	machines.Post("/", RequireRole(entity.RoleAdmin), catalogHandler.CreateMachine)
	machines.Put("/:id", RequireRole(entity.RoleAdmin), catalogHandler.UpdateMachine)
	machines.Delete("/:id", RequireRole(entity.RoleAdmin), catalogHandler.DeleteMachine)
}
