package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/acero08/RutaCervezera-sub000/internal/config"
	"github.com/acero08/RutaCervezera-sub000/internal/handler"
	"github.com/acero08/RutaCervezera-sub000/internal/middleware"
	"github.com/acero08/RutaCervezera-sub000/internal/repository"
	"github.com/acero08/RutaCervezera-sub000/internal/service"
	"github.com/acero08/RutaCervezera-sub000/internal/worker"
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
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	barRepo := repository.NewBarRepository(db)
	itemRepo := repository.NewItemRepository(db)
	resenaRepo := repository.NewResenaRepository(db)
	eventoRepo := repository.NewEventoRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	barSvc := service.NewBarService(barRepo)
	itemSvc := service.NewItemService(itemRepo, barRepo, rdb, cfg.PDFStoragePath)
	resenaSvc := service.NewResenaService(resenaRepo, barRepo, usuarioRepo, dispatcher)
	eventoSvc := service.NewEventoService(eventoRepo, barRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	baresH := handler.NewBaresHandler(barSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	resenasH := handler.NewResenasHandler(resenaSvc)
	eventosH := handler.NewEventosHandler(eventoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Registrar)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Public discovery endpoints — the app browses without an account
	v1 := r.Group("/v1")
	{
		v1.GET("/bares", baresH.Listar)
		v1.GET("/bares/:barId", baresH.ObtenerPorID)
		v1.GET("/bares/:barId/menu", itemsH.ListarMenu)
		v1.GET("/bares/:barId/menu/buscar", itemsH.Buscar)
		v1.GET("/bares/:barId/menu/pdf", itemsH.MenuPDF)
		v1.GET("/bares/:barId/resenas", resenasH.ListarPorBar)
		v1.GET("/bares/:barId/eventos", eventosH.ListarProximos)
		v1.GET("/items/:id", itemsH.ObtenerPorID)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	priv := r.Group("/v1", jwtMW)
	{
		// Bar and menu management — dueno or admin
		gestion := middleware.RequireRole("dueno", "admin")
		priv.POST("/bares", gestion, baresH.Crear)
		priv.PUT("/bares/:barId", gestion, baresH.Actualizar)
		priv.DELETE("/bares/:barId", gestion, baresH.Eliminar)

		priv.POST("/bares/:barId/items", gestion, itemsH.Crear)
		priv.PUT("/items/:id", gestion, itemsH.Actualizar)
		priv.DELETE("/items/:id", gestion, itemsH.Eliminar)

		priv.POST("/bares/:barId/eventos", gestion, eventosH.Crear)
		priv.PUT("/eventos/:id", gestion, eventosH.Actualizar)
		priv.DELETE("/eventos/:id", gestion, eventosH.Eliminar)

		// Reviews — any authenticated user
		priv.POST("/bares/:barId/resenas", resenasH.Crear)
		priv.DELETE("/resenas/:id", resenasH.Eliminar)
		priv.POST("/resenas/:id/upvote", resenasH.Upvote)
		priv.DELETE("/resenas/:id/upvote", resenasH.QuitarUpvote)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
