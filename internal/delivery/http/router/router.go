// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stockhub/internal/delivery/http/middleware"
	"stockhub/internal/delivery/http/router/handler"
	"stockhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ProductHandler     *handler.ProductHandler
	MaintenanceHandler *handler.MaintenanceHandler
	ClientHandler      *handler.ClientHandler
	TransactionHandler *handler.TransactionHandler
	EmployeeHandler    *handler.EmployeeHandler
	FileHandler        *handler.FileHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	productHandler     *handler.ProductHandler
	maintenanceHandler *handler.MaintenanceHandler
	clientHandler      *handler.ClientHandler
	transactionHandler *handler.TransactionHandler
	employeeHandler    *handler.EmployeeHandler
	fileHandler        *handler.FileHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		productHandler:     params.ProductHandler,
		maintenanceHandler: params.MaintenanceHandler,
		clientHandler:      params.ClientHandler,
		transactionHandler: params.TransactionHandler,
		employeeHandler:    params.EmployeeHandler,
		fileHandler:        params.FileHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/verify", r.authHandler.Verify)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Account routes that require authentication
	accountGroup := api.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("", r.authHandler.GetAccount)
		accountGroup.PATCH("", r.authHandler.UpdateAccount)
		accountGroup.POST("/action-token", r.authHandler.ActionToken)
	}

	// Product catalog routes
	productGroup := api.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.POST("", r.productHandler.Create)
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/search", r.productHandler.Search)
		productGroup.GET("/:productId", r.productHandler.Get)
		productGroup.PUT("/:productId", r.productHandler.Update)
		productGroup.DELETE("/:productId", r.productHandler.Delete)
		productGroup.GET("/:productId/maintenances", r.maintenanceHandler.ListByProduct)
	}

	// Maintenance log routes
	maintenanceGroup := api.Group("/maintenances")
	maintenanceGroup.Use(r.authMiddleware.Authenticate)
	{
		maintenanceGroup.POST("", r.maintenanceHandler.Create)
		maintenanceGroup.PUT("/:maintenanceId", r.maintenanceHandler.Update)
		maintenanceGroup.DELETE("/:maintenanceId", r.maintenanceHandler.Delete)
	}

	// Client registry routes
	clientGroup := api.Group("/clients")
	clientGroup.Use(r.authMiddleware.Authenticate)
	{
		clientGroup.GET("/:dni", r.clientHandler.Get)
	}

	// Orders and invoices share handlers; the kind is fixed per group.
	r.registerTransactionRoutes(api.Group("/orders"), entity.KindOrder)
	r.registerTransactionRoutes(api.Group("/invoices"), entity.KindInvoice)

	// Stored document and hosted image routes
	fileGroup := api.Group("/files")
	fileGroup.Use(r.authMiddleware.Authenticate)
	{
		fileGroup.POST("/documents/:externalId", r.fileHandler.UploadDocument)
		fileGroup.GET("/documents/:externalId", r.fileHandler.DownloadDocument)
		fileGroup.DELETE("/documents/:externalId", r.fileHandler.DeleteDocument)
		fileGroup.POST("/images", r.fileHandler.UploadImage)
		fileGroup.DELETE("/images/:filename", r.fileHandler.DeleteImage)
	}

	// Staff management routes
	employeeGroup := api.Group("/employees")
	employeeGroup.Use(r.authMiddleware.Authenticate)
	{
		employeeGroup.POST("", r.employeeHandler.Create)
		employeeGroup.GET("", r.employeeHandler.List)
		employeeGroup.DELETE("/:employeeId", r.employeeHandler.Delete)
	}
}

func (r *router) registerTransactionRoutes(g *echo.Group, kind entity.TransactionKind) {
	session := r.authMiddleware.Authenticate

	g.POST("", r.transactionHandler.Create(kind), session)
	g.GET("", r.transactionHandler.List(kind), session)
	g.GET("/:transactionId", r.transactionHandler.Get, session)
	g.DELETE("/:externalId", r.transactionHandler.Delete, session)
	g.GET("/:externalId/sign/qr", r.transactionHandler.SignQR, session)
	g.POST("/:externalId/send-email", r.transactionHandler.SendEmail, session)

	// The signer is the end client on their own device; the QR link token
	// stands in for a session here.
	g.POST("/:externalId/sign", r.transactionHandler.Sign, r.authMiddleware.AuthenticateSigning)
	g.GET("/:externalId/sign", r.transactionHandler.GetSignature, r.authMiddleware.AuthenticateSigning)
}
