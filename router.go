package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"oficina_xpto/controllers"
	"oficina_xpto/middleware"
)

// setupRouter wires every controller onto a gin engine. The database handle
// is passed down explicitly; nothing reaches for a global.
func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.RequestID())

	router.GET("/health", healthCheck)
	router.GET("/api/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	clientes := controllers.NewClienteController(db)
	grupo := router.Group("/clientes")
	{
		grupo.POST("", clientes.Criar)
		grupo.GET("", clientes.Listar)
		grupo.GET("/:id", clientes.Buscar)
		grupo.PUT("/:id", clientes.Atualizar)
		grupo.DELETE("/:id", clientes.Excluir)
	}

	veiculos := controllers.NewVeiculoController(db)
	grupo = router.Group("/veiculos")
	{
		grupo.POST("", veiculos.Criar)
		grupo.GET("", veiculos.Listar)
		grupo.GET("/:id", veiculos.Buscar)
		grupo.PUT("/:id", veiculos.Atualizar)
		grupo.DELETE("/:id", veiculos.Excluir)
	}

	mecanicos := controllers.NewMecanicoController(db)
	grupo = router.Group("/mecanicos")
	{
		grupo.POST("", mecanicos.Criar)
		grupo.GET("", mecanicos.Listar)
		grupo.GET("/:id", mecanicos.Buscar)
		grupo.PUT("/:id", mecanicos.Atualizar)
		grupo.DELETE("/:id", mecanicos.Excluir)
	}

	pecas := controllers.NewPecaController(db)
	grupo = router.Group("/pecas")
	{
		grupo.POST("", pecas.Criar)
		grupo.GET("", pecas.Listar)
		grupo.GET("/:id", pecas.Buscar)
		grupo.PUT("/:id", pecas.Atualizar)
		grupo.DELETE("/:id", pecas.Excluir)
	}

	ordens := controllers.NewOrdemServicoController(db)
	grupo = router.Group("/ordens-servico")
	{
		grupo.POST("", ordens.Criar)
		grupo.GET("", ordens.Listar)
		grupo.GET("/:id", ordens.Buscar)
		grupo.PUT("/:id", ordens.Atualizar)
		grupo.DELETE("/:id", ordens.Excluir)
	}

	return router
}
