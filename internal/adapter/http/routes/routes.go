package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"

	_ "engetrack/docs" // This will be auto-generated
	"engetrack/internal/adapter/http/handlers"
	"engetrack/internal/adapter/http/middleware"
	repository2 "engetrack/internal/adapter/persistence/repository"
	"engetrack/internal/domain/permissions"
	"engetrack/internal/infrastructure/database"
	"engetrack/internal/infrastructure/storage"
	"engetrack/internal/infrastructure/stream"
	"engetrack/internal/usecase"

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

	servicoRepo := repository2.NewServicoDynamoRepository(ddb)
	tecnicoRepo := repository2.NewTecnicoDynamoRepository(ddb)

	blobStorage, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure blob storage: %v", err)
	}

	resolver, err := permissions.LoadResolver(getenvDefault("PERMISSIONS_FILE", "permissions.yaml"))
	if err != nil {
		log.Fatalf("Failed to load permission table: %v", err)
	}

	hub := stream.NewHub(servicoRepo)

	servicoUseCase := usecase.NewServicoUseCase(servicoRepo, tecnicoRepo, blobStorage, hub)
	fichaUseCase := usecase.NewFichaUseCase(servicoRepo, hub)
	tecnicoUseCase := usecase.NewTecnicoUseCase(tecnicoRepo)

	notificacaoUseCase := usecase.NewNotificacaoUseCase()
	notificacaoUseCase.Start(context.Background(), hub)

	servicoHandler := handlers.NewServicoHandler(servicoUseCase)
	fichaHandler := handlers.NewFichaHandler(fichaUseCase, servicoUseCase)
	tecnicoHandler := handlers.NewTecnicoHandler(tecnicoUseCase)
	notificacaoHandler := handlers.NewNotificacaoHandler(notificacaoUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Todo o resto exige identidade autenticada com acesso a algum setor.
	auth := v1.Group("", middleware.Auth(os.Getenv("JWT_SECRET"), resolver))
	addWorkflowRoutes(auth, servicoHandler, fichaHandler, tecnicoHandler, notificacaoHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
