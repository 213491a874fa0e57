package main

import (
	"context"
	"database/sql"
	"log"

	apiConfig "smartpos/src/api/config"
	checkoutUseCase "smartpos/src/checkout/application/usecase"
	"smartpos/src/checkout/infrastructure/cartstore"
	checkoutCatalog "smartpos/src/checkout/infrastructure/catalog"
	checkoutController "smartpos/src/checkout/infrastructure/controller"
	checkoutPersistence "smartpos/src/checkout/infrastructure/persistence"
	"smartpos/src/checkout/infrastructure/printer"
	customerUseCase "smartpos/src/customers/application/usecase"
	customerController "smartpos/src/customers/infrastructure/controller"
	customerPersistence "smartpos/src/customers/infrastructure/persistence"
	expenseUseCase "smartpos/src/expenses/application/usecase"
	expenseController "smartpos/src/expenses/infrastructure/controller"
	expensePersistence "smartpos/src/expenses/infrastructure/persistence"
	inventoryUseCase "smartpos/src/inventory/application/usecase"
	inventoryController "smartpos/src/inventory/infrastructure/controller"
	inventoryPersistence "smartpos/src/inventory/infrastructure/persistence"
	notificationController "smartpos/src/notifications/infrastructure/controller"
	"smartpos/src/notifications/infrastructure/feed"
	"smartpos/src/notifications/infrastructure/listener"
	reportUseCase "smartpos/src/reports/application/usecase"
	reportController "smartpos/src/reports/infrastructure/controller"
	reportPersistence "smartpos/src/reports/infrastructure/persistence"
	settingsCache "smartpos/src/settings/infrastructure/cache"
	settingsController "smartpos/src/settings/infrastructure/controller"
	settingsPersistence "smartpos/src/settings/infrastructure/persistence"
	sharedConfig "smartpos/src/shared/infrastructure/config"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 Smart POS Service - Iniciando...")

	cfg := sharedConfig.Load()

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	if cfg.PrometheusEnabled {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Conectar a la base de datos (opcional para bootstrap)
	connStr := cfg.ConnString()
	log.Printf("Intentando conectar a la base de datos: %s", cfg.DBName)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		if err = db.Ping(); err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Println("✅ Conexión a la base de datos establecida con éxito")
		}
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	if db != nil {
		businessCache := setupSettingsModule(v1, db)
		setupCheckoutModule(v1, db, businessCache)
		setupReportsModule(v1, db, cfg)
		setupInventoryModule(v1, db)
		setupCustomersModule(v1, db)
		setupExpensesModule(v1, db)
		setupNotificationsModule(v1, connStr, cfg)
	} else {
		log.Println("⚠️  Módulos de negocio deshabilitados (sin conexión a DB)")
	}

	// Iniciar el servidor
	log.Printf("✅ Servidor Smart POS iniciado en http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// setupSettingsModule configura el módulo Settings y retorna el cache del negocio
func setupSettingsModule(router *gin.RouterGroup, db *sql.DB) *settingsCache.BusinessCache {
	log.Println("Configurando módulo Settings...")

	businessRepo := settingsPersistence.NewBusinessPostgresRepository(db)

	businessCache := settingsCache.NewBusinessCache()
	if err := businessCache.LoadFromRepo(context.Background(), businessRepo); err != nil {
		log.Printf("⚠️  Advertencia: cache de negocio inicia con valores por defecto: %v", err)
	}

	settingsCtrl := settingsController.NewSettingsController(businessRepo, businessCache)
	settingsCtrl.RegisterRoutes(router)

	return businessCache
}

// setupCheckoutModule configura el módulo Checkout (terminal POS)
func setupCheckoutModule(router *gin.RouterGroup, db *sql.DB, businessCache *settingsCache.BusinessCache) {
	log.Println("Configurando módulo Checkout...")

	saleRepo := checkoutPersistence.NewSalePostgresRepository(db)
	stockGateway := inventoryPersistence.NewStockPostgresGateway(db)
	productCatalog := checkoutCatalog.NewProductCatalogPostgres(db)
	receiptPrinter := printer.NewLogReceiptPrinter()

	checkoutUC := checkoutUseCase.NewCheckoutUseCase(saleRepo, stockGateway, receiptPrinter, businessCache)
	listSalesUC := checkoutUseCase.NewListSalesUseCase(saleRepo)

	carts := cartstore.NewCartStore()

	checkoutCtrl := checkoutController.NewCheckoutController(checkoutUC, listSalesUC, carts, productCatalog)
	checkoutCtrl.RegisterRoutes(router)
}

// setupReportsModule configura el módulo Reports
func setupReportsModule(router *gin.RouterGroup, db *sql.DB, cfg sharedConfig.ServiceConfig) {
	log.Println("Configurando módulo Reports...")

	source := reportPersistence.NewReportPostgresSource(db)
	salesReportUC := reportUseCase.NewSalesReportUseCase(source, cfg.FallbackCostRatio)

	reportCtrl := reportController.NewReportController(salesReportUC)
	reportCtrl.RegisterRoutes(router)
}

// setupInventoryModule configura el módulo Inventory
func setupInventoryModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Inventory...")

	productRepo := inventoryPersistence.NewProductPostgresRepository(db)

	productCtrl := inventoryController.NewProductController(
		inventoryUseCase.NewCreateProductUseCase(productRepo),
		inventoryUseCase.NewUpdateProductUseCase(productRepo),
		inventoryUseCase.NewDeleteProductUseCase(productRepo),
		inventoryUseCase.NewListProductsUseCase(productRepo),
		inventoryUseCase.NewFindByBarcodeUseCase(productRepo),
	)
	productCtrl.RegisterRoutes(router)
}

// setupCustomersModule configura el módulo Customers
func setupCustomersModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Customers...")

	customerRepo := customerPersistence.NewCustomerPostgresRepository(db)

	customerCtrl := customerController.NewCustomerController(
		customerUseCase.NewCreateCustomerUseCase(customerRepo),
		customerUseCase.NewListCustomersUseCase(customerRepo),
		customerUseCase.NewDeleteCustomerUseCase(customerRepo),
	)
	customerCtrl.RegisterRoutes(router)
}

// setupExpensesModule configura el módulo Expenses
func setupExpensesModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Expenses...")

	expenseRepo := expensePersistence.NewExpensePostgresRepository(db)

	expenseCtrl := expenseController.NewExpenseController(
		expenseUseCase.NewCreateExpenseUseCase(expenseRepo),
		expenseUseCase.NewListExpensesUseCase(expenseRepo),
		expenseUseCase.NewDeleteExpenseUseCase(expenseRepo),
	)
	expenseCtrl.RegisterRoutes(router)
}

// setupNotificationsModule configura el feed de notificaciones y su listener
func setupNotificationsModule(router *gin.RouterGroup, connStr string, cfg sharedConfig.ServiceConfig) {
	log.Println("Configurando módulo Notifications...")

	notifFeed := feed.NewFeed(cfg.NotificationCapacity)

	inventoryListener := listener.NewInventoryListener(connStr, notifFeed, cfg.LowStockThreshold)
	if err := inventoryListener.Start(context.Background()); err != nil {
		log.Printf("⚠️  Advertencia: listener de inventario no iniciado: %v", err)
		log.Println("⚠️  Continuando sin notificaciones en tiempo real")
	}

	notifCtrl := notificationController.NewNotificationController(notifFeed)
	notifCtrl.RegisterRoutes(router)
}
