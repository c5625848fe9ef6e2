package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogUseCase "github.com/iagobrdev/orders-bootcamp/src/catalog/application/usecase"
	catalogController "github.com/iagobrdev/orders-bootcamp/src/catalog/infrastructure/controller"
	catalogPersistence "github.com/iagobrdev/orders-bootcamp/src/catalog/infrastructure/persistence"
	orderUseCase "github.com/iagobrdev/orders-bootcamp/src/order/application/usecase"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/port"
	"github.com/iagobrdev/orders-bootcamp/src/order/domain/service"
	orderCatalog "github.com/iagobrdev/orders-bootcamp/src/order/infrastructure/catalog"
	orderController "github.com/iagobrdev/orders-bootcamp/src/order/infrastructure/controller"
	"github.com/iagobrdev/orders-bootcamp/src/order/infrastructure/messaging"
	orderPersistence "github.com/iagobrdev/orders-bootcamp/src/order/infrastructure/persistence"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/config"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/database"
	"github.com/iagobrdev/orders-bootcamp/src/shared/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	serveCmd := newServeCmd(&configPath)
	cmd := &cobra.Command{
		Use:           "orders",
		Short:         "Customers, products and orders back office",
		SilenceUsage:  true,
		SilenceErrors: true,
		// sin subcomando levanta el servidor
		RunE: serveCmd.RunE,
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a yaml config file (or CONFIG_FILE)")
	cmd.AddCommand(serveCmd)
	cmd.AddCommand(newMigrateUpCmd(&configPath))
	cmd.AddCommand(newMigrateCreateCmd(&configPath))
	return cmd
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func newMigrateUpCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-up",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return database.MigrateUp(cfg.Database.MigrationsDir, cfg.Database.DSN())
		},
	}
}

func newMigrateCreateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate-create <name>",
		Short: "Create an empty up/down migration pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			_, _, err = database.CreateMigration(cfg.Database.MigrationsDir, args[0])
			return err
		},
	}
}

func serve(cfg config.AppConfig) error {
	log.Println("🚀 Orders Service - Iniciando...")

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Prometheus: registry propio y /metrics solo si está habilitado
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(registry)
		router.Use(m.Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
		log.Println("✅ /metrics endpoint registered")
	} else {
		log.Println("Prometheus metrics disabled")
	}

	config.SetupSharedMiddleware(router, cfg.Gzip)

	db, err := database.Connect(cfg.Database.DSN())
	if err != nil {
		return err
	}
	defer db.Close()
	log.Printf("✅ Conexión a %s establecida con éxito", cfg.Database.Name)

	router.GET("/health", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	publisher, err := messaging.NewEventPublisher(cfg.Events)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Printf("WARNING: Failed to close event publisher: %v", err)
		}
	}()

	v1 := router.Group("/api/v1")
	catalogReader := setupCatalogModule(v1, db)
	setupOrderModule(v1, db, catalogReader, publisher, m, cfg.Orders)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("✅ Servidor Orders Service iniciado en http://localhost:%s", cfg.Server.Port)
		log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupCatalogModule configura clientes y productos; devuelve el lector de catálogo para pedidos
func setupCatalogModule(router *gin.RouterGroup, db *sqlx.DB) port.CatalogReader {
	log.Println("Configurando módulo Catalog...")

	customerRepo := catalogPersistence.NewCustomerPostgresRepository(db)
	productRepo := catalogPersistence.NewProductPostgresRepository(db)

	catalogController.NewCustomerController(catalogUseCase.NewCustomerUseCase(customerRepo)).RegisterRoutes(router)
	catalogController.NewProductController(catalogUseCase.NewProductUseCase(productRepo)).RegisterRoutes(router)

	log.Println("✅ Módulo Catalog configurado")
	return orderCatalog.NewRepositoryCatalogReader(customerRepo, productRepo)
}

// setupOrderModule configura el pipeline de pedidos y los reportes
func setupOrderModule(
	router *gin.RouterGroup,
	db *sqlx.DB,
	catalogReader port.CatalogReader,
	publisher port.EventPublisher,
	m *metrics.Metrics,
	ordersCfg config.OrdersConfig,
) {
	log.Println("Configurando módulo Order...")

	orderRepo := orderPersistence.NewOrderPostgresRepository(db)

	validator := service.NewOrderValidator(catalogReader)
	calculator := service.NewOrderCalculator(catalogReader)
	reconciler := service.NewOrderReconciler(catalogReader)

	var observer orderUseCase.OperationObserver
	if m != nil {
		observer = m
	}
	options := orderUseCase.OrderOptions{
		EnforceStatusTransitions: ordersCfg.EnforceStatusTransitions,
		DetailedCreateErrors:     ordersCfg.DetailedCreateErrors,
	}

	orderController.NewOrderController(orderController.OrderUseCases{
		Create:       orderUseCase.NewCreateOrderUseCase(orderRepo, catalogReader, validator, calculator, publisher, observer, options),
		Update:       orderUseCase.NewUpdateOrderUseCase(orderRepo, catalogReader, reconciler, validator, calculator, publisher, observer, options),
		UpdateStatus: orderUseCase.NewUpdateOrderStatusUseCase(orderRepo, publisher, observer, options),
		Delete:       orderUseCase.NewDeleteOrderUseCase(orderRepo, publisher, observer),
		Get:          orderUseCase.NewGetOrderUseCase(orderRepo),
		Total:        orderUseCase.NewOrderTotalUseCase(orderRepo, calculator),
		List:         orderUseCase.NewListOrdersUseCase(orderRepo),
	}).RegisterRoutes(router)

	orderController.NewReportController(orderUseCase.NewDailyReportUseCase(orderRepo)).RegisterRoutes(router)

	log.Println("✅ Módulo Order configurado")
}
