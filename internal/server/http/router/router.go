package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/antech/configstore/internal/domain/model"
	"github.com/antech/configstore/internal/server/http/handlers"
	"github.com/antech/configstore/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	userHandler := handlers.NewUserHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	configurationHandler := handlers.NewConfigurationHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	users := api.Group("/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)
	users.POST("/password/reset", authHandler.RequestReset)
	users.POST("/password/confirm", authHandler.ConfirmReset)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/users/logout", authHandler.Logout)
	authed.GET("/users/me", userHandler.Me)
	authed.DELETE("/users/me", userHandler.DeleteMe)

	authed.GET("/components", catalogHandler.ListComponents)
	authed.GET("/components/:id", catalogHandler.GetComponent)
	authed.GET("/component-types", catalogHandler.ListComponentTypes)
	authed.GET("/manufacturers", catalogHandler.ListManufacturers)

	authed.POST("/configurations", configurationHandler.Create)
	authed.GET("/configurations", configurationHandler.List)
	authed.GET("/configurations/:id", configurationHandler.Get)
	authed.PATCH("/configurations/:id", configurationHandler.Update)
	authed.DELETE("/configurations/:id", configurationHandler.Delete)
	authed.GET("/configurations/:id/price", configurationHandler.Quote)
	authed.POST("/configurations/:id/items", configurationHandler.AddItem)
	authed.PATCH("/configurations/:id/items/:componentID", configurationHandler.UpdateItem)
	authed.DELETE("/configurations/:id/items/:componentID", configurationHandler.RemoveItem)

	authed.POST("/orders", orderHandler.Create)
	authed.GET("/orders", orderHandler.List)
	authed.GET("/orders/:id", orderHandler.Get)
	authed.DELETE("/orders/:id", orderHandler.Delete)
	authed.PATCH("/orders/:id/status", orderHandler.SetStatus)

	admin := api.Group("/admin")
	admin.Use(middleware.RequireRole(facade, model.RoleAdministrator))
	admin.GET("/users", userHandler.List)
	admin.PATCH("/users/:id/role", userHandler.ChangeRole)
	admin.POST("/components", catalogHandler.CreateComponent)
	admin.PATCH("/components/:id", catalogHandler.UpdateComponent)
	admin.DELETE("/components/:id", catalogHandler.DeleteComponent)
	admin.POST("/component-types", catalogHandler.CreateComponentType)
	admin.POST("/manufacturers", catalogHandler.CreateManufacturer)
	admin.GET("/orders", orderHandler.ListAll)
	admin.POST("/orders/:id/configurations", orderHandler.Attach)
	admin.PATCH("/orders/:id/configurations/:configurationID", orderHandler.UpdateSnapshot)
	admin.DELETE("/orders/:id/configurations/:configurationID", orderHandler.RemoveSnapshot)
	admin.GET("/statuses", orderHandler.Statuses)

	return engine
}
