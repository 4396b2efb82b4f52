package routes

import (
	_ "gyeonjeok/docs" // This will be auto-generated
	"gyeonjeok/internal/adapter/http/handlers"
	"gyeonjeok/internal/adapter/http/middleware"
	repository2 "gyeonjeok/internal/adapter/persistence/repository"
	"gyeonjeok/internal/infrastructure/database"
	"gyeonjeok/internal/infrastructure/identity"
	"gyeonjeok/internal/usecase"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	recordStore := repository2.NewRecordDynamoRepository(ddb)

	idp, err := identity.NewHTTPIdentityProvider(os.Getenv("IDENTITY_BASE_URL"), os.Getenv("IDENTITY_SERVICE_KEY"))
	if err != nil {
		log.Fatalf("Identity provider not configured: %v", err)
	}

	catalogUseCase := usecase.NewCatalogUseCase(recordStore)
	estimateUseCase := usecase.NewEstimateRecordUseCase(recordStore)
	signupUseCase := usecase.NewSignupUseCase(idp)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	estimateHandler := handlers.NewEstimateRecordHandler(estimateUseCase)
	authHandler := handlers.NewAuthHandler(signupUseCase)

	v1 := router.Group("/v1")
	addHealthRoutes(v1)
	addAuthRoutes(v1, authHandler)
	addRecordRoutes(v1, middleware.RequireAuth(idp), catalogHandler, estimateHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
