package router

import (
	"time"

	"jumbox/internal/config"
	"jumbox/internal/handler"
	"jumbox/internal/infra"
	"jumbox/internal/middleware"
	"jumbox/internal/model"
	"jumbox/internal/repository"
	"jumbox/internal/service"

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

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)
	imagenes := infra.NewImagenStore(cfg.ImagenStoragePath)

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	sucursalRepo := repository.NewSucursalRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	almacenRepo := repository.NewAlmacenRepository(db)
	carritoRepo := repository.NewCarritoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	reposicionRepo := repository.NewReposicionRepository(db)
	estadisticaRepo := repository.NewEstadisticaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(clienteRepo, sucursalRepo, cfg.JWTSecret, cfg.JWTExpirationHours)
	catalogoSvc := service.NewCatalogoService(productoRepo, categoriaRepo, almacenRepo, rdb, imagenes)
	carritoSvc := service.NewCarritoService(carritoRepo, productoRepo)
	pedidoSvc := service.NewPedidoService(pedidoRepo, carritoRepo, almacenRepo, sucursalRepo, clienteRepo, mailer)
	reposicionSvc := service.NewReposicionService(reposicionRepo, productoRepo, almacenRepo)
	estadisticaSvc := service.NewEstadisticaService(estadisticaRepo)
	sucursalSvc := service.NewSucursalService(sucursalRepo, clienteRepo, almacenRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc, sucursalSvc)
	carritoH := handler.NewCarritoHandler(carritoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	sucursalH := handler.NewSucursalHandler(sucursalSvc, pedidoSvc, reposicionSvc, catalogoSvc)
	adminH := handler.NewAdminHandler(catalogoSvc, sucursalSvc, reposicionSvc, estadisticaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/registro", middleware.LoginRateLimiter(), authH.Registro)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Catalog browsing is public: anyone can see products, categories and
	// branches before creating an account.
	r.GET("/v1/productos", catalogoH.ListarProductos)
	r.GET("/v1/productos/:id", catalogoH.ObtenerProducto)
	r.GET("/v1/categorias", catalogoH.ListarCategorias)
	r.GET("/v1/sucursales", catalogoH.ListarSucursales)
	r.GET("/v1/sucursales/:id/productos", catalogoH.ProductosSucursal)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/perfil", authH.Perfil)
		v1.PUT("/perfil/direccion", authH.ActualizarDireccion)

		// Customer cart and orders
		cliente := v1.Group("", middleware.RequireRole(model.RolUsuario, model.RolAdmin))
		{
			cliente.GET("/carrito", carritoH.Ver)
			cliente.POST("/carrito/items", carritoH.Agregar)
			cliente.DELETE("/carrito/items/:producto_id", carritoH.Quitar)

			cliente.POST("/pedidos", pedidosH.Checkout)
			cliente.GET("/pedidos", pedidosH.MisPedidos)
			cliente.GET("/pedidos/:id/comprobante", pedidosH.Comprobante)
		}

		// Branch panel — the branch identity always comes from the JWT
		sucursal := v1.Group("/sucursal", middleware.RequireRole(model.RolSucursal))
		{
			sucursal.GET("/almacen", sucursalH.Almacen)
			sucursal.GET("/pedidos", sucursalH.Pedidos)
			sucursal.PATCH("/pedidos/:id/enviar", sucursalH.Enviar)
			sucursal.POST("/reposiciones", sucursalH.SolicitarReposicion)
			sucursal.GET("/reposiciones", sucursalH.Reposiciones)
			sucursal.GET("/reposiciones/productos", sucursalH.ProductosReposicion)
		}

		admin := v1.Group("/admin", middleware.RequireRole(model.RolAdmin))
		{
			admin.GET("/productos", adminH.ListarProductos)
			admin.POST("/productos", adminH.CrearProducto)
			admin.PUT("/productos/:id", adminH.ActualizarProducto)
			admin.POST("/productos/:id/imagen", adminH.SubirImagen)

			admin.POST("/categorias", adminH.CrearCategoria)

			admin.POST("/sucursales", adminH.CrearSucursal)

			admin.GET("/solicitudes", adminH.Solicitudes)
			admin.POST("/solicitudes/:id/aprobar", adminH.AprobarSolicitud)
			admin.POST("/solicitudes/:id/rechazar", adminH.RechazarSolicitud)

			admin.GET("/estadisticas", adminH.Estadisticas)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
