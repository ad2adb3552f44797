// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ProfileHandler      *handler.ProfileHandler
	EventHandler        *handler.EventHandler
	RegistrationHandler *handler.RegistrationHandler
	ApplicationHandler  *handler.ApplicationHandler
	ProductHandler      *handler.ProductHandler
	ReferenceHandler    *handler.ReferenceHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	profileHandler      *handler.ProfileHandler
	eventHandler        *handler.EventHandler
	registrationHandler *handler.RegistrationHandler
	applicationHandler  *handler.ApplicationHandler
	productHandler      *handler.ProductHandler
	referenceHandler    *handler.ReferenceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		profileHandler:      params.ProfileHandler,
		eventHandler:        params.EventHandler,
		registrationHandler: params.RegistrationHandler,
		applicationHandler:  params.ApplicationHandler,
		productHandler:      params.ProductHandler,
		referenceHandler:    params.ReferenceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}
	authSessionGroup := e.Group("/auth")
	authSessionGroup.Use(r.authMiddleware.Authenticate)
	{
		authSessionGroup.POST("/logout-all", r.userHandler.LogoutAllDevices)
		authSessionGroup.GET("/sessions", r.userHandler.GetActiveSessions)
	}

	// Profile routes. Onboarding itself must stay reachable before the
	// onboarded gate, so only Authenticate applies here.
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("/onboarding", r.profileHandler.CompleteOnboarding)
		profileGroup.PUT("", r.profileHandler.SaveProfile)
	}

	// Navigation answers for every session state, so authentication is
	// optional and failures fall back to the anonymous decision.
	e.GET("/navigation", r.profileHandler.Navigation, r.authMiddleware.OptionalAuthenticate)

	// Event routes readable by any onboarded role.
	eventGroup := e.Group("/events")
	eventGroup.Use(r.authMiddleware.Authenticate)
	eventGroup.Use(r.authMiddleware.RequireOnboarded)
	{
		eventGroup.GET("", r.eventHandler.ListEvents)
		eventGroup.GET("/:id", r.eventHandler.GetEvent)
		eventGroup.POST("/:id/register", r.registrationHandler.Register)
	}

	// Registration routes for the applicant's own tickets.
	registrationGroup := e.Group("/registrations")
	registrationGroup.Use(r.authMiddleware.Authenticate)
	registrationGroup.Use(r.authMiddleware.RequireOnboarded)
	{
		registrationGroup.GET("", r.registrationHandler.ListRegistrations)
		registrationGroup.GET("/:id/ticket", r.registrationHandler.TicketQR)
	}

	// Organizer routes that require authentication and the "organizer" role.
	organizerGroup := e.Group("/organizer")
	organizerGroup.Use(r.authMiddleware.Authenticate)
	organizerGroup.Use(r.authMiddleware.RequireRole(entity.RoleOrganizer))
	organizerGroup.Use(r.authMiddleware.RequireOnboarded)
	{
		organizerGroup.GET("/events", r.eventHandler.ListOwnedEvents)
		organizerGroup.POST("/events", r.eventHandler.CreateEvent)
		organizerGroup.PUT("/events/:id", r.eventHandler.UpdateEvent)
		organizerGroup.DELETE("/events/:id", r.eventHandler.DeleteEvent)
		organizerGroup.GET("/applications", r.applicationHandler.ListApplications)
		organizerGroup.PATCH("/applications/:id", r.applicationHandler.SetStatus)
		organizerGroup.POST("/checkin", r.applicationHandler.CheckInTicket)
	}

	// Public catalog reads plus the creator's showcase management.
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
	}
	creatorGroup := e.Group("/creator")
	creatorGroup.Use(r.authMiddleware.Authenticate)
	creatorGroup.Use(r.authMiddleware.RequireRole(entity.RoleCreator))
	creatorGroup.Use(r.authMiddleware.RequireOnboarded)
	{
		creatorGroup.GET("/products", r.productHandler.ListOwnedProducts)
		creatorGroup.POST("/products", r.productHandler.CreateProduct)
		creatorGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		creatorGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)
	}

	// Static reference content, no authentication required.
	referenceGroup := e.Group("/reference")
	{
		referenceGroup.GET("/schemes", r.referenceHandler.ListSchemes)
		referenceGroup.GET("/guidance", r.referenceHandler.ListGuidance)
	}
}
