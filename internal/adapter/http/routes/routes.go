package routes

import (
	"context"
	"os"
	_ "salesdesk/docs" // This will be auto-generated
	"salesdesk/internal/adapter/http/handlers"
	repository2 "salesdesk/internal/adapter/persistence/repository"
	"salesdesk/internal/infrastructure/database"
	"salesdesk/internal/infrastructure/metrics"
	"salesdesk/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run(ctx context.Context, log *zap.Logger) error {
	m := metrics.NewRegistry()
	setMiddlewares(log, m)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(ctx, log, m); err != nil {
		return err
	}

	return router.Run(":" + resolvePort())
}

func getRoutes(ctx context.Context, log *zap.Logger, m *metrics.Registry) error {
	ddb, err := database.NewClientFromEnv(ctx)
	if err != nil {
		return err
	}
	if err := database.EnsureTables(ctx, ddb, log); err != nil {
		return err
	}

	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, orderRepo, log)
	productUseCase := usecase.NewProductUseCase(productRepo, orderRepo, log, m)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, customerRepo, productRepo, log, m)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, customerRepo, productRepo, log)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Probes and metrics stay outside the versioned API.
	addOpsRoutes(&router.RouterGroup, m)

	v1 := router.Group("/v1")
	addSalesRoutes(v1, customerHandler, productHandler, orderHandler, dashboardHandler)
	return nil
}

func setMiddlewares(log *zap.Logger, m *metrics.Registry) {
	router.Use(requestLogger(log))
	router.Use(httpMetrics(m))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}

func resolvePort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return strconv.Itoa(PORT)
}
