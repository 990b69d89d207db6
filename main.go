package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/controllers"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/database"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/middleware"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/realtime"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/routes"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

const defaultPurgeDelaySeconds = 5

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	if err := godotenv.Load(".env"); err != nil {
		log.Warn("no .env file found, relying on environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:9000"
	}
	purgeDelay := time.Duration(defaultPurgeDelaySeconds) * time.Second
	if raw := os.Getenv("ORDER_PURGE_DELAY_SECONDS"); raw != "" {
		if seconds, err := strconv.Atoi(raw); err == nil && seconds >= 0 {
			purgeDelay = time.Duration(seconds) * time.Second
		}
	}

	client := database.Connect()
	tenantStore := database.NewTenantStore(client)
	orderStore := database.NewOrderStore(client)
	completedStore := database.NewCompletedOrderStore(client)
	catalogStore := database.NewCatalogStore(client)

	hub := realtime.NewHub(log)
	resolver := services.NewTenantResolver(tenantStore)
	allocator := services.NewOrderNumberAllocator(orderStore, log)
	orderService := services.NewOrderService(resolver, allocator, orderStore, completedStore, hub, log, purgeDelay)
	reportService := services.NewReportService(resolver, completedStore, log)
	businessService := services.NewBusinessService(resolver, tenantStore, hub)
	catalogService := services.NewCatalogService(resolver, catalogStore, hub)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public surface: customers order from QR codes and screens subscribe
	// without an account.
	routes.AuthRoutes(router, controllers.NewAuthController(resolver))
	routes.OrderRoutes(router, controllers.NewOrderController(orderService))
	routes.RealtimeRoutes(router, controllers.NewRealtimeController(hub, resolver, log))

	// Admin surface behind the tenant-admin token.
	router.Use(middleware.Authentication())
	routes.ReportRoutes(router, controllers.NewReportController(reportService))
	routes.BusinessRoutes(router, controllers.NewBusinessController(businessService))
	routes.CatalogRoutes(router, controllers.NewCatalogController(catalogService))

	log.WithField("port", port).Info("starting server")
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
