package main

import (
	"bnc-store/config"
	_ "bnc-store/docs"
	"bnc-store/middleware"
	"bnc-store/repositories"
	"bnc-store/routes"
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

// @title BNC Store API
// @version 1.0
// @description Electronics storefront and admin console API
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.InitDB()
	defer config.CloseDB()

	config.InitRedis()
	defer config.CloseRedis()

	if err := repositories.NewAdminRepository().EnsureSeed(context.Background()); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
