package routes

import (
	"log"
	"os"
	"strconv"

	_ "leadpilot/docs" // This will be auto-generated
	"leadpilot/internal/adapter/http/handlers"
	repository2 "leadpilot/internal/adapter/persistence/repository"
	"leadpilot/internal/infrastructure/database"
	"leadpilot/internal/infrastructure/payments"
	"leadpilot/internal/usecase"
	"leadpilot/internal/usecase/interfaces"

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

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	quotationRepo := repository2.NewQuotationDynamoRepository(ddb)
	paymentRepo := repository2.NewDepositPaymentDynamoRepository(ddb)

	leadUseCase := usecase.NewLeadUseCase(leadRepo)
	quickWinsUseCase := usecase.NewQuickWinsUseCase(leadRepo)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, leadRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, quotationRepo, paymentGateway)

	leadHandler := handlers.NewLeadHandler(leadUseCase, quickWinsUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	paymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addLeadPilotRoutes(v1, leadHandler, quotationHandler, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
