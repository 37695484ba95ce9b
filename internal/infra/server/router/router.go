// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/personal-dashboard/backend/internal/integration/entrypoint/controller"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	betController         *controller.BetController
	debtController        *controller.DebtController
	analysisController    *controller.AnalysisController
	agendaController      *controller.AgendaController
	ideaController        *controller.IdeaController
	salesController       *controller.SalesController
	dashboardController   *controller.DashboardController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	betController *controller.BetController,
	debtController *controller.DebtController,
	analysisController *controller.AnalysisController,
	agendaController *controller.AgendaController,
	ideaController *controller.IdeaController,
	salesController *controller.SalesController,
	dashboardController *controller.DashboardController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		betController:         betController,
		debtController:        debtController,
		analysisController:    analysisController,
		agendaController:      agendaController,
		ideaController:        ideaController,
		salesController:       salesController,
		dashboardController:   dashboardController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.DELETE("/:id", r.transactionController.Delete)
			transactions.GET("/insights", r.transactionController.Insights)
		}

		bets := v1.Group("/bets")
		{
			bets.GET("", r.betController.List)
			bets.POST("", r.betController.Create)
			bets.PATCH("/:id", r.betController.Update)
			bets.DELETE("/:id", r.betController.Delete)
			bets.POST("/:id/settle", r.betController.Settle)
			bets.POST("/settle-pending", r.betController.SettleAll)
			bets.GET("/insights", r.betController.Insights)
		}

		debts := v1.Group("/debts")
		{
			debts.GET("", r.debtController.List)
			debts.POST("", r.debtController.Create)
			debts.PATCH("/:id", r.debtController.Update)
			debts.DELETE("/:id", r.debtController.Delete)
		}

		analyses := v1.Group("/analyses")
		{
			analyses.GET("", r.analysisController.List)
			analyses.GET("/matches", r.analysisController.Matches)
			analyses.POST("/generate", r.analysisController.Generate)
			analyses.DELETE("/:id", r.analysisController.Delete)
			analyses.DELETE("", r.analysisController.Clear)
		}

		events := v1.Group("/events")
		{
			events.GET("", r.agendaController.List)
			events.POST("", r.agendaController.Create)
			events.DELETE("/:id", r.agendaController.Delete)
		}

		ideas := v1.Group("/ideas")
		{
			ideas.GET("", r.ideaController.List)
			ideas.POST("", r.ideaController.Create)
			ideas.DELETE("/:id", r.ideaController.Delete)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.salesController.ListProducts)
			products.POST("", r.salesController.CreateProduct)
			products.DELETE("/:id", r.salesController.DeleteProduct)
			products.POST("/:id/script", r.salesController.GenerateScript)
		}

		salesGroup := v1.Group("/sales")
		{
			salesGroup.GET("", r.salesController.ListSales)
			salesGroup.POST("", r.salesController.CreateSale)
			salesGroup.DELETE("/:id", r.salesController.DeleteSale)
		}

		scripts := v1.Group("/sales-scripts")
		{
			scripts.GET("", r.salesController.ListScripts)
			scripts.POST("", r.salesController.SaveScript)
			scripts.DELETE("/:id", r.salesController.DeleteScript)
		}

		dashboard := v1.Group("/dashboard")
		{
			dashboard.GET("/overview", r.dashboardController.Overview)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
