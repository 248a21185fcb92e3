package routes

import (
	"log"
	"os"
	"strconv"

	_ "studio_quotation/docs" // This will be auto-generated
	"studio_quotation/internal/adapter/http/handlers"
	repository2 "studio_quotation/internal/adapter/persistence/repository"
	"studio_quotation/internal/infrastructure/database"
	"studio_quotation/internal/infrastructure/notifications"
	"studio_quotation/internal/usecase"
	"studio_quotation/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	accessCodeRepo := repository2.NewAccessCodeDynamoRepository(ddb)
	couponRepo := repository2.NewCouponDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	setupRepo := repository2.NewProjectSetupDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	projectRepo := repository2.NewRunningProjectDynamoRepository(ddb)
	workflowRepo := repository2.NewWorkflowStatusDynamoRepository(ddb)

	var notifier interfaces.INotifier = notifications.NewNoopNotifier()
	if url := os.Getenv("NOTIFICATION_WEBHOOK_URL"); url != "" {
		notifier = notifications.NewWebhookNotifier(url)
	} else {
		log.Printf("[notify] NOTIFICATION_WEBHOOK_URL not set, notifications disabled")
	}

	accessCodeUseCase := usecase.NewAccessCodeUseCase(accessCodeRepo)
	couponUseCase := usecase.NewCouponUseCase(couponRepo)
	workflowUseCase := usecase.NewWorkflowUseCase(workflowRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo, workflowRepo, accessCodeUseCase, workflowUseCase, notifier)
	setupUseCase := usecase.NewProjectSetupUseCase(setupRepo, clientRepo, workflowUseCase)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, setupRepo, projectRepo, couponUseCase, workflowUseCase, notifier)
	projectUseCase := usecase.NewRunningProjectUseCase(projectRepo, workflowUseCase)

	accessCodeHandler := handlers.NewAccessCodeHandler(accessCodeUseCase)
	couponHandler := handlers.NewCouponHandler(couponUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	setupHandler := handlers.NewProjectSetupHandler(setupUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	projectHandler := handlers.NewRunningProjectHandler(projectUseCase)
	workflowHandler := handlers.NewWorkflowHandler(workflowUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, clientHandler, accessCodeHandler, couponHandler, setupHandler, quotationHandler, projectHandler, workflowHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
