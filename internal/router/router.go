package router

import (
	"time"

	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/config"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/handler"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/middleware"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/repository"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/service"
	"github.com/OmarAlbafica/AppEliGomez-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
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
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	tiendaRepo := repository.NewTiendaRepository(db)
	encomendistaRepo := repository.NewEncomendistaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	remuneracionRepo := repository.NewRemuneracionRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	clienteSvc := service.NewClienteService(clienteRepo)
	tiendaSvc := service.NewTiendaService(tiendaRepo)
	encomendistaSvc := service.NewEncomendistaService(encomendistaRepo)
	productoSvc := service.NewProductoService(productoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, productoRepo, tiendaRepo)
	remuneracionSvc := service.NewRemuneracionService(remuneracionRepo, pedidoRepo, rdb)
	importacionSvc := service.NewImportacionService()

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	remuneracionesH := handler.NewRemuneracionesHandler(remuneracionSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	encomendistasH := handler.NewEncomendistasHandler(encomendistaSvc)
	tiendasH := handler.NewTiendasHandler(tiendaSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	importacionH := handler.NewImportacionHandler(importacionSvc)
	etiquetasH := handler.NewEtiquetasHandler(pedidoSvc, dispatcher)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: admin, almacen, repartidor — declared per-endpoint
		todos := middleware.RequireRole("admin", "almacen", "repartidor")
		almacenOAdmin := middleware.RequireRole("admin", "almacen")
		soloAdmin := middleware.RequireRole("admin")

		// Pedidos
		v1.POST("/pedidos", almacenOAdmin, pedidosH.Crear)
		v1.GET("/pedidos", todos, pedidosH.Listar)
		v1.GET("/pedidos-sin-finalizar", todos, pedidosH.SinFinalizar)
		v1.GET("/pedido/:id", todos, pedidosH.ObtenerPorID)
		v1.GET("/pedido/codigo/:codigo", todos, pedidosH.ObtenerPorCodigo)
		v1.POST("/pedido/:id/cambiar-estado", todos, pedidosH.CambiarEstado)
		v1.DELETE("/pedido/:id", soloAdmin, pedidosH.Eliminar)

		// Agenda (classifier views)
		v1.GET("/pedidos-urgentes-empacar", almacenOAdmin, pedidosH.UrgentesEmpacar)
		v1.GET("/pedidos-por-remunerar", soloAdmin, pedidosH.PorRemunerar)
		v1.GET("/pedidos-para-envios", todos, pedidosH.ParaEnvios)

		// Remuneraciones
		rem := v1.Group("/remuneraciones", soloAdmin)
		{
			rem.POST("/alternar", remuneracionesH.Alternar)
			rem.GET("", remuneracionesH.Listar)
			rem.GET("/totales", remuneracionesH.Totales)
			rem.GET("/stream", remuneracionesH.Stream)
		}

		// Catalogos
		v1.GET("/clientes", todos, clientesH.Listar)
		v1.GET("/clientes/:id", todos, clientesH.ObtenerPorID)
		clientes := v1.Group("/clientes", almacenOAdmin)
		{
			clientes.POST("", clientesH.Crear)
			clientes.DELETE("/:id", clientesH.Desactivar)
		}

		v1.GET("/encomendistas", todos, encomendistasH.Listar)
		v1.GET("/encomendistas/:id", todos, encomendistasH.ObtenerPorID)
		encomendistas := v1.Group("/encomendistas", soloAdmin)
		{
			encomendistas.POST("", encomendistasH.Crear)
			encomendistas.DELETE("/:id", encomendistasH.Desactivar)
		}

		v1.GET("/tiendas", todos, tiendasH.Listar)
		tiendas := v1.Group("/tiendas", soloAdmin)
		{
			tiendas.POST("", tiendasH.Crear)
			tiendas.DELETE("/:id", tiendasH.Desactivar)
		}

		v1.GET("/productos", todos, productosH.Listar)
		v1.GET("/productos/:id", todos, productosH.ObtenerPorID)
		v1.POST("/productos", almacenOAdmin, productosH.Crear)

		// Importacion y etiquetas
		v1.POST("/importacion/csv", soloAdmin, importacionH.ImportarCSV)
		v1.POST("/etiquetas/urgentes", almacenOAdmin, etiquetasH.GenerarUrgentes)

		// Usuarios
		usuarios := v1.Group("/usuarios", soloAdmin)
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
