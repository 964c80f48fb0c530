// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hearth/internal/delivery/http/middleware"
	"hearth/internal/delivery/http/router/handler"
	"hearth/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	HouseholdHandler *handler.HouseholdHandler
	FinanceHandler   *handler.FinanceHandler
	CalendarHandler  *handler.CalendarHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	householdHandler *handler.HouseholdHandler
	financeHandler   *handler.FinanceHandler
	calendarHandler  *handler.CalendarHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		householdHandler: params.HouseholdHandler,
		financeHandler:   params.FinanceHandler,
		calendarHandler:  params.CalendarHandler,
		authMiddleware:   params.AuthMiddleware,
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
	}

	// User routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	userGroup.Use(r.authMiddleware.RequireActive)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PATCH("/me", r.userHandler.UpdateMe)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Listing all accounts additionally requires the system admin role
	adminGroup := e.Group("/users")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireActive)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("", r.userHandler.ListUsers)
	}

	// Household and invitation routes
	householdGroup := e.Group("/households")
	householdGroup.Use(r.authMiddleware.Authenticate)
	householdGroup.Use(r.authMiddleware.RequireActive)
	{
		householdGroup.POST("", r.householdHandler.CreateHousehold)
		householdGroup.GET("/my", r.householdHandler.GetMyHousehold)
		householdGroup.POST("/invitations", r.householdHandler.InviteMember)
		householdGroup.GET("/invitations", r.householdHandler.ListInvitations)
		householdGroup.POST("/invitations/accept", r.householdHandler.AcceptInvitation)
		householdGroup.DELETE("/invitations/:id", r.householdHandler.RevokeInvitation)
		householdGroup.GET("/invitations/:id/qr", r.householdHandler.InvitationQR)
	}

	// Finance routes, all scoped to the caller's household
	categoryGroup := e.Group("/categories")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	categoryGroup.Use(r.authMiddleware.RequireActive)
	{
		categoryGroup.POST("", r.financeHandler.CreateCategory)
		categoryGroup.GET("", r.financeHandler.ListCategories)
		categoryGroup.GET("/:id", r.financeHandler.GetCategory)
	}

	transactionGroup := e.Group("/transactions")
	transactionGroup.Use(r.authMiddleware.Authenticate)
	transactionGroup.Use(r.authMiddleware.RequireActive)
	{
		transactionGroup.POST("", r.financeHandler.CreateTransaction)
		transactionGroup.GET("", r.financeHandler.ListTransactions)
		transactionGroup.GET("/:id", r.financeHandler.GetTransaction)
		transactionGroup.PATCH("/:id", r.financeHandler.UpdateTransaction)
		transactionGroup.DELETE("/:id", r.financeHandler.DeleteTransaction)
	}

	budgetGroup := e.Group("/budgets")
	budgetGroup.Use(r.authMiddleware.Authenticate)
	budgetGroup.Use(r.authMiddleware.RequireActive)
	{
		budgetGroup.PUT("", r.financeHandler.UpsertBudget)
		budgetGroup.GET("", r.financeHandler.ListBudgets)
		budgetGroup.DELETE("/:id", r.financeHandler.DeleteBudget)
	}

	// Calendar routes
	eventGroup := e.Group("/events")
	eventGroup.Use(r.authMiddleware.Authenticate)
	eventGroup.Use(r.authMiddleware.RequireActive)
	{
		eventGroup.POST("", r.calendarHandler.CreateEvent)
		eventGroup.GET("", r.calendarHandler.ListEvents)
		eventGroup.GET("/:id", r.calendarHandler.GetEvent)
		eventGroup.PATCH("/:id", r.calendarHandler.UpdateEvent)
		eventGroup.DELETE("/:id", r.calendarHandler.DeleteEvent)
	}
}
