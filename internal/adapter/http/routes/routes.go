package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/giancarlo349/G-OS3/docs" // This will be auto-generated
	"github.com/giancarlo349/G-OS3/internal/adapter/http/handlers"
	"github.com/giancarlo349/G-OS3/internal/adapter/http/middleware"
	"github.com/giancarlo349/G-OS3/internal/adapter/persistence/repository"
	"github.com/giancarlo349/G-OS3/internal/infrastructure/database"
	"github.com/giancarlo349/G-OS3/internal/infrastructure/documents"
	"github.com/giancarlo349/G-OS3/internal/infrastructure/notify"
	"github.com/giancarlo349/G-OS3/internal/usecase"
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

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	accountRepo := repository.NewAccountDynamoRepository(ddb)

	notifier := notify.NewRedisNotifier(notify.ConnectRedis())
	sessions := usecase.NewSessionStore(0)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret"
		log.Printf("[routes] JWT_SECRET not set, using dev default")
	}

	authUseCase := usecase.NewAuthUseCase(accountRepo, []byte(secret), 12*time.Hour)
	editorUseCase := usecase.NewEditorUseCase(sessions, quoteRepo, productRepo, notifier)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, notifier)
	suggestionUseCase := usecase.NewSuggestionUseCase(productRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(quoteRepo, notifier)
	documentUseCase := usecase.NewDocumentUseCase(quoteRepo, documents.NewPDFRenderer(), documents.NewSpreadsheetRenderer())

	authHandler := handlers.NewAuthHandler(authUseCase)
	editorHandler := handlers.NewEditorHandler(editorUseCase)
	productHandler := handlers.NewProductHandler(catalogUseCase, suggestionUseCase, notifier)
	quoteHandler := handlers.NewQuoteHandler(dashboardUseCase, notifier)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas autenticadas
	protected := v1.Group("", middleware.RequireAuth(authUseCase))
	addSessionRoutes(protected, authHandler)
	addQuotingRoutes(protected, editorHandler, productHandler, quoteHandler, documentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
