package main

import (
	"fmt"
	"log/slog"
	"os"

	"pharmacy/cmd"
	httpadapter "pharmacy/internal/adapters/in/http"
	"pharmacy/internal/adapters/out/postgres"
	"pharmacy/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateCleanupOrphanedBlobsCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpadapter.NewServer(httpadapter.Dependencies{
		UpsertCatalogBatchHandler:     app.CreateUpsertCatalogBatchCommandHandler(),
		DeleteCatalogRecordHandler:    app.CreateDeleteCatalogRecordCommandHandler(),
		SaveOrderRowHandler:           app.CreateSaveOrderRowCommandHandler(),
		SetUrgentHandler:              app.CreateSetUrgentCommandHandler(),
		DeleteOrderRowHandler:         app.CreateDeleteOrderRowCommandHandler(),
		SendToFulfillmentHandler:      app.CreateSendToFulfillmentCommandHandler(),
		UpdateFulfillmentHandler:      app.CreateUpdateFulfillmentCommandHandler(),
		ConfirmFulfillmentHandler:     app.CreateConfirmFulfillmentCommandHandler(),
		UpdateProcessHandler:          app.CreateUpdateProcessCommandHandler(),
		ArchiveAndClearHandler:        app.CreateArchiveAndClearCommandHandler(),
		ResetPipelineHandler:          app.CreateResetPipelineCommandHandler(),
		GetAllCatalogHandler:          app.CreateGetAllCatalogQueryHandler(),
		GetAllOrderRowsHandler:        app.CreateGetAllOrderRowsQueryHandler(),
		GetAllFulfillmentHandler:      app.CreateGetAllFulfillmentQueryHandler(),
		GetAllProcessesHandler:        app.CreateGetAllProcessesQueryHandler(),
		GetCostReportHandler:          app.CreateGetCostReportQueryHandler(),
		ListArchiveBundlesHandler:     app.CreateListArchiveBundlesQueryHandler(),
		GetLatestArchiveBundleHandler: app.CreateGetLatestArchiveBundleQueryHandler(),
		BlobStore:                     app.BlobStore(),
	})

	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
