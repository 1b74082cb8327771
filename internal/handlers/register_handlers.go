package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"

	"github.com/SscSPs/checkin_ledger/cmd/docs"
	portssvc "github.com/SscSPs/checkin_ledger/internal/core/ports/services"
	"github.com/SscSPs/checkin_ledger/internal/middleware"
	"github.com/SscSPs/checkin_ledger/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter may be nil to disable login rate limiting.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	r.GET("/health", getHealth)

	// Public authentication routes
	registerAuthRoutes(r.Group("/api/v1"), services, loginLimiter)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the authenticated /api/v1 group
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))
	RegisterLedgerRoutes(v1, services.Ledger)
}

// RegisterLedgerRoutes mounts the check-in, mood, journal and entry routes on rg.
// Callers are expected to have applied authentication to rg.
func RegisterLedgerRoutes(rg *gin.RouterGroup, ledgerSvc portssvc.LedgerSvcFacade) {
	registerCheckInRoutes(rg, ledgerSvc)
	registerMoodRoutes(rg, ledgerSvc)
	registerJournalRoutes(rg, ledgerSvc)
	registerEntryRoutes(rg, ledgerSvc)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
