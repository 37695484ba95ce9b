// Package main is the entry point for the Personal Dashboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/personal-dashboard/backend/config"
	"github.com/personal-dashboard/backend/internal/application/usecase/agenda"
	"github.com/personal-dashboard/backend/internal/application/usecase/analysis"
	"github.com/personal-dashboard/backend/internal/application/usecase/betting"
	"github.com/personal-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/personal-dashboard/backend/internal/application/usecase/debt"
	"github.com/personal-dashboard/backend/internal/application/usecase/finance"
	"github.com/personal-dashboard/backend/internal/application/usecase/idea"
	"github.com/personal-dashboard/backend/internal/application/usecase/sales"
	"github.com/personal-dashboard/backend/internal/infra/db"
	"github.com/personal-dashboard/backend/internal/infra/server/router"
	"github.com/personal-dashboard/backend/internal/integration/adapters"
	"github.com/personal-dashboard/backend/internal/integration/cache"
	"github.com/personal-dashboard/backend/internal/integration/email"
	"github.com/personal-dashboard/backend/internal/integration/entrypoint/controller"
	"github.com/personal-dashboard/backend/internal/integration/persistence"
	"github.com/personal-dashboard/backend/internal/integration/persistence/model"
	"github.com/personal-dashboard/backend/internal/store"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Personal Dashboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Storage)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(&model.SlotModel{}); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Load every tracker collection into memory before serving
	snapshots := persistence.NewSnapshotRepository(database.DB())
	trackers := store.New(snapshots)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	if err := trackers.LoadAll(loadCtx); err != nil {
		cancelLoad()
		slog.Error("Failed to load tracker data", "error", err)
		os.Exit(1)
	}
	cancelLoad()

	// Optional oracle cache
	var oracleCache analysis.OracleCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisOracleCache(cfg.Redis.URL, cfg.Redis.TTL)
		if err != nil {
			slog.Warn("Oracle cache unavailable, running without it", "error", err)
		} else {
			oracleCache = redisCache
			defer func() {
				if err := redisCache.Close(); err != nil {
					slog.Error("Failed to close oracle cache connection", "error", err)
				}
			}()
			slog.Info("Oracle cache connected")
		}
	}

	// Oracle service
	oracle := adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if !oracle.IsAvailable() {
		slog.Warn("GEMINI_API_KEY not set, AI endpoints will return unavailable")
	}

	// Finance use cases
	addTransaction := finance.NewAddTransactionUseCase(trackers.Transactions)
	deleteTransaction := finance.NewDeleteTransactionUseCase(trackers.Transactions)
	listTransactions := finance.NewListTransactionsUseCase(trackers.Transactions)
	financeInsights := finance.NewGetInsightsUseCase(trackers.Transactions, oracle)

	// Betting use cases
	tracker := betting.NewCheckTracker()
	addBet := betting.NewAddBetUseCase(trackers.Bets)
	updateBet := betting.NewUpdateBetUseCase(trackers.Bets)
	deleteBet := betting.NewDeleteBetUseCase(trackers.Bets)
	listBets := betting.NewListBetsUseCase(trackers.Bets)
	settleBet := betting.NewSettleBetUseCase(trackers.Bets, oracle, tracker)
	settleAll := betting.NewSettleAllUseCase(trackers.Bets, oracle, tracker)
	bettingInsights := betting.NewGetInsightsUseCase(trackers.Bets, oracle)

	// Debt use cases
	addDebt := debt.NewAddDebtUseCase(trackers.Debts)
	updateDebt := debt.NewUpdateDebtUseCase(trackers.Debts)
	deleteDebt := debt.NewDeleteDebtUseCase(trackers.Debts)
	listDebts := debt.NewListDebtsUseCase(trackers.Debts)

	// Game analysis use cases
	fetchMatches := analysis.NewFetchMatchesUseCase(oracle, oracleCache)
	generateAnalyses := analysis.NewGenerateAnalysesUseCase(trackers.GameAnalyses, oracle, oracleCache)
	listAnalyses := analysis.NewListAnalysesUseCase(trackers.GameAnalyses)
	deleteAnalysis := analysis.NewDeleteAnalysisUseCase(trackers.GameAnalyses)
	clearAnalyses := analysis.NewClearAnalysesUseCase(trackers.GameAnalyses)

	// Agenda use cases
	scheduleEvent := agenda.NewScheduleEventUseCase(trackers.Events, oracle)
	listEvents := agenda.NewListEventsUseCase(trackers.Events)
	deleteEvent := agenda.NewDeleteEventUseCase(trackers.Events)

	// Idea use cases
	addIdea := idea.NewAddIdeaUseCase(trackers.Ideas)
	deleteIdea := idea.NewDeleteIdeaUseCase(trackers.Ideas)
	listIdeas := idea.NewListIdeasUseCase(trackers.Ideas)

	// Sales use cases
	addProduct := sales.NewAddProductUseCase(trackers.Products)
	deleteProduct := sales.NewDeleteProductUseCase(trackers.Products)
	listProducts := sales.NewListProductsUseCase(trackers.Products)
	addSale := sales.NewAddSaleUseCase(trackers.Products, trackers.Sales)
	deleteSale := sales.NewDeleteSaleUseCase(trackers.Sales)
	listSales := sales.NewListSalesUseCase(trackers.Sales)
	generateScript := sales.NewGenerateScriptUseCase(trackers.Products, oracle)
	saveScript := sales.NewSaveScriptUseCase(trackers.Products, trackers.SalesScripts)
	deleteScript := sales.NewDeleteScriptUseCase(trackers.SalesScripts)
	listScripts := sales.NewListScriptsUseCase(trackers.SalesScripts)

	// Dashboard use case
	overview := dashboard.NewGetOverviewUseCase(trackers)

	// Controllers
	healthController := controller.NewHealthController(database)
	transactionController := controller.NewTransactionController(addTransaction, deleteTransaction, listTransactions, financeInsights)
	betController := controller.NewBetController(addBet, updateBet, deleteBet, listBets, settleBet, settleAll, bettingInsights)
	debtController := controller.NewDebtController(addDebt, updateDebt, deleteDebt, listDebts)
	analysisController := controller.NewAnalysisController(fetchMatches, generateAnalyses, listAnalyses, deleteAnalysis, clearAnalyses)
	agendaController := controller.NewAgendaController(scheduleEvent, listEvents, deleteEvent)
	ideaController := controller.NewIdeaController(addIdea, deleteIdea, listIdeas)
	salesController := controller.NewSalesController(
		addProduct, deleteProduct, listProducts,
		addSale, deleteSale, listSales,
		generateScript, saveScript, deleteScript, listScripts,
	)
	dashboardController := controller.NewDashboardController(overview)

	// Setup router
	r := router.NewRouter(
		healthController,
		transactionController,
		betController,
		debtController,
		analysisController,
		agendaController,
		ideaController,
		salesController,
		dashboardController,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Background reminder worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" && cfg.Email.ToEmail != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewReminderWorker(trackers.Events, sender, cfg.Email.ToEmail, cfg.Email.PollInterval)
		go worker.Start(workerCtx)
	} else if cfg.Email.WorkerEnabled {
		slog.Warn("Reminder worker enabled but RESEND_API_KEY or REMINDER_TO_EMAIL is missing, worker not started")
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
