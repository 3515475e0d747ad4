package router

import (
	"time"

	"github.com/CruzGuillermo/stock-app/internal/config"
	"github.com/CruzGuillermo/stock-app/internal/handler"
	"github.com/CruzGuillermo/stock-app/internal/middleware"
	"github.com/CruzGuillermo/stock-app/internal/repository"
	"github.com/CruzGuillermo/stock-app/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, zona *time.Location) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	ingresoRepo := repository.NewIngresoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	ofertaRepo := repository.NewOfertaRepository(db)
	resumenRepo := repository.NewResumenRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo)
	ingresoSvc := service.NewIngresoService(ingresoRepo, productoRepo)
	ventaSvc := service.NewVentaService(ventaRepo, productoRepo, zona)
	ofertaSvc := service.NewOfertaService(ofertaRepo, productoRepo)
	resumenSvc := service.NewResumenService(resumenRepo, ingresoRepo)
	consultaSvc := service.NewConsultaService(productoRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	ingresosH := handler.NewIngresosHandler(ingresoSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, ventaRepo, cfg.TicketStoragePath)
	ofertasH := handler.NewOfertasHandler(ofertaSvc)
	resumenH := handler.NewResumenHandler(resumenSvc)
	consultaH := handler.NewConsultaPreciosHandler(consultaSvc)
	healthH := handler.NewHealthHandler(db, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", healthH.Check)
	r.POST("/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Price check for the counter display, no auth required
	r.GET("/consulta-precios", consultaH.Consultar)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	operadores := middleware.RequireRole("operador", "administrador")
	admin := middleware.RequireRole("administrador")

	v1 := r.Group("/v1", jwtMW)
	{
		// Productos: lectura para todos los roles, escritura para administrador
		v1.GET("/productos", operadores, productosH.Listar)
		v1.GET("/productos/buscar", operadores, productosH.Buscar)
		v1.GET("/productos/stock", operadores, productosH.ListarStock)
		prods := v1.Group("/productos", admin)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Desactivar)
		}

		ingresos := v1.Group("/ingresos-stock", admin)
		{
			ingresos.POST("", ingresosH.Registrar)
			ingresos.PUT("/:id", ingresosH.Actualizar)
			ingresos.DELETE("/:id", ingresosH.Eliminar)
			ingresos.GET("/historial", ingresosH.Historial)
			ingresos.GET("/inversion-total", ingresosH.InversionTotal)
		}

		v1.POST("/ventas", operadores, ventasH.Registrar)
		v1.GET("/ventas", operadores, ventasH.Listado)
		v1.GET("/ventas/historial", operadores, ventasH.Historial)
		v1.GET("/ventas/:id", operadores, ventasH.Detalle)
		v1.GET("/ventas/:id/ticket", operadores, ventasH.Ticket)
		v1.DELETE("/ventas/:id", admin, ventasH.Anular)

		v1.GET("/ofertas", operadores, ofertasH.Listar)
		ofertas := v1.Group("/ofertas", admin)
		{
			ofertas.POST("", ofertasH.Crear)
			ofertas.PUT("/:id", ofertasH.Actualizar)
			ofertas.DELETE("/:id", ofertasH.Eliminar)
		}

		resumen := v1.Group("", admin)
		{
			resumen.GET("/resumen-financiero", resumenH.ResumenFinanciero)
			resumen.GET("/balance-avanzado", resumenH.BalanceAvanzado)
			resumen.GET("/productos-mas-vendidos", resumenH.TopProductos)
		}

		v1.POST("/usuarios", admin, authH.CrearUsuario)
	}

	// Swagger UI, only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
