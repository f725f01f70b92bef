package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "scopeworks/docs" // This will be auto-generated
	"scopeworks/internal/adapter/http/handlers"
	"scopeworks/internal/adapter/persistence/repository"
	"scopeworks/internal/infrastructure/config"
	"scopeworks/internal/infrastructure/database"
	"scopeworks/internal/infrastructure/projects"
	"scopeworks/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ddb := database.ConnectDynamoDB(cfg)

	estimateRepo := repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable)
	lineItemRepo := repository.NewLineItemDynamoRepository(ddb, cfg.LineItemsTable)
	structureRepo := repository.NewStructureDynamoRepository(ddb, cfg.EpicsTable, cfg.StagesTable, cfg.LineItemsTable)
	milestoneRepo := repository.NewMilestoneDynamoRepository(ddb, cfg.MilestonesTable)
	catalogRepo := repository.NewCatalogDynamoRepository(ddb, cfg.RolesTable, cfg.UsersTable, cfg.RateOverridesTable)

	projectGateway, err := projects.NewProjectServiceGateway(cfg.ProjectServiceURL, cfg.ProjectServiceMock, logger)
	if err != nil {
		log.Fatalf("Project gateway not configured: %v", err)
	}

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, lineItemRepo, structureRepo, catalogRepo, projectGateway, logger)
	lineItemUseCase := usecase.NewLineItemUseCase(lineItemRepo, estimateRepo, catalogRepo, projectGateway)
	structureUseCase := usecase.NewStructureUseCase(structureRepo, lineItemRepo, estimateRepo)
	milestoneUseCase := usecase.NewMilestoneUseCase(milestoneRepo, estimateRepo, lineItemRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	lineItemHandler := handlers.NewLineItemHandler(lineItemUseCase)
	structureHandler := handlers.NewStructureHandler(structureUseCase)
	milestoneHandler := handlers.NewMilestoneHandler(milestoneUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler, lineItemHandler, structureHandler, milestoneHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
