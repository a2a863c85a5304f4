package main

import (
	"fmt"
	"os"

	"freight/cmd"
	httpadapter "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres/haulerrepo"
	"freight/internal/adapters/out/postgres/loadrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, db)

	jobManager := app.CreateJobManager()
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&loadrepo.LoadDTO{}, &loadrepo.HistoryDTO{}, &haulerrepo.HaulerDTO{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		app.CreatePostLoadCommandHandler(),
		app.CreateClaimLoadCommandHandler(),
		app.CreateAssignLoadCommandHandler(),
		app.CreateCancelLoadCommandHandler(),
		app.CreatePickupLoadCommandHandler(),
		app.CreateDeliverLoadCommandHandler(),
		app.CreateCloseLoadCommandHandler(),
		app.CreateRegisterHaulerCommandHandler(),
		app.CreateUpdateHaulerProfileCommandHandler(),
		app.CreateGetMyLoadsQueryHandler(),
		app.CreateGetAvailableLoadsQueryHandler(),
		app.CreateGetMyJobsQueryHandler(),
		app.CreateGetLoadDetailsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
