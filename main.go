package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"safereport-be/config"
	"safereport-be/controllers"
	"safereport-be/middlewares"
	"safereport-be/reports"
	"safereport-be/routes"
	"safereport-be/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	if db == nil {
		log.Fatal("Failed to connect to MongoDB")
	}
	log.Println("MongoDB connection established successfully!")

	config.ConnectRedis()

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	photos, err := storage.NewDiskPhotoStore(uploadDir)
	if err != nil {
		log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	store := reports.NewMongoStore(config.GetCollection("reports"))
	reportController := controllers.NewReportController(store, photos)

	submitLimit := 20
	if raw := os.Getenv("REPORT_SUBMIT_LIMIT"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			submitLimit = parsed
		}
	}

	r := gin.Default()
	r.Use(cors.Default())

	r.Static("/uploads", uploadDir)

	routes.ReportRoutes(r, reportController, middlewares.ReportRateLimiter(submitLimit))
	routes.AuthRoutes(r)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
