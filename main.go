package main

import (
	"fmt"
	"os"

	"attendpro-backend/config"
	"attendpro-backend/ledger"
	"attendpro-backend/models"
	"attendpro-backend/routes"
	"attendpro-backend/services"
	"attendpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	utils.InitializeLogger()
	log := utils.GetLogger()
	defer log.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.ServiceCategory{},
		&models.Attendance{},
		&models.DigestLog{},
	)

	digest := services.NewDigestService(db, ledger.New(db, log), log)
	digest.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
