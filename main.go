package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"oficina_xpto/config"
	_ "oficina_xpto/docs"
	"oficina_xpto/models"
)

// @title           API Oficina
// @version         1.0
// @description     Backend de controle de oficina mecânica: clientes, veículos, mecânicos, peças e ordens de serviço.

// @host      localhost:3000
// @BasePath  /
func main() {
	log.Println("Starting Oficina API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	router := setupRouter(db)

	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	log.Printf("Swagger UI available on http://localhost%s/api/index.html", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "API Oficina is running",
	})
}
