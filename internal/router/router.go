package router

import (
	"time"

	"github.com/Mehdi1002/bambin-dashboard-secret/internal/config"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/handler"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/middleware"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/repository"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/service"
	"github.com/Mehdi1002/bambin-dashboard-secret/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	childRepo := repository.NewChildRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	childSvc := service.NewChildService(childRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, childRepo)
	ledgerSvc := service.NewLedgerService(childRepo, paymentRepo)
	invoiceSvc := service.NewInvoiceService(childRepo, paymentRepo, counterRepo, dispatcher, cfg.DefaultMonthlyFee)
	documentSvc := service.NewDocumentService(childRepo, settingRepo, cfg.PDFStoragePath)
	settingsSvc := service.NewSettingsService(settingRepo)
	statsSvc := service.NewStatsService(childRepo, paymentRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	childrenH := handler.NewChildrenHandler(childSvc)
	paymentsH := handler.NewPaymentsHandler(paymentSvc)
	ledgerH := handler.NewLedgerHandler(ledgerSvc)
	invoicesH := handler.NewInvoicesHandler(invoiceSvc)
	documentsH := handler.NewDocumentsHandler(documentSvc, cfg.PDFStoragePath)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	statsH := handler.NewStatsHandler(statsSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		enfants := v1.Group("/enfants")
		{
			enfants.POST("", childrenH.Create)
			enfants.GET("", childrenH.List)
			enfants.POST("/import", childrenH.ImportCSV)
			enfants.GET("/:id", childrenH.Get)
			enfants.PUT("/:id", childrenH.Update)
			enfants.DELETE("/:id", childrenH.Delete)
		}

		v1.GET("/ledger", ledgerH.GetLedger)
		v1.GET("/retards", ledgerH.GetLate)

		paiements := v1.Group("/paiements")
		{
			paiements.POST("", paymentsH.Upsert)
			paiements.PATCH("/:id/montant", paymentsH.UpdateAmount)
			paiements.POST("/:id/valider", paymentsH.Validate)
		}

		v1.POST("/factures", invoicesH.Build)

		v1.POST("/documents", documentsH.Build)
		v1.GET("/documents/pdf/:file", documentsH.ServePDF)

		v1.GET("/profil", settingsH.Get)
		v1.PUT("/profil", settingsH.Update)

		v1.GET("/stats", statsH.Dashboard)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
