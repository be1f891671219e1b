package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"oficina_xpto/models"
	"oficina_xpto/utils"
)

// ClienteRequest represents the request body for creating or updating a
// cliente.
type ClienteRequest struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// ClienteController handles HTTP requests for clientes.
type ClienteController struct {
	db *gorm.DB
}

func NewClienteController(db *gorm.DB) *ClienteController {
	return &ClienteController{db: db}
}

// Criar handles POST /clientes
//
//	@Summary	Registra um novo cliente
//	@Tags		Clientes
//	@Accept		json
//	@Produce	json
//	@Param		cliente	body		ClienteRequest	true	"Dados do cliente"
//	@Success	201		{object}	models.Cliente
//	@Failure	500		{object}	map[string]string
//	@Router		/clientes [post]
func (ctl *ClienteController) Criar(c *gin.Context) {
	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cliente := models.Cliente{Nome: req.Nome, Email: req.Email, Telefone: req.Telefone}
	if err := ctl.db.WithContext(c.Request.Context()).Create(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, cliente)
}

// Listar handles GET /clientes
//
//	@Summary	Lista todos os clientes
//	@Tags		Clientes
//	@Produce	json
//	@Success	200	{array}		models.Cliente
//	@Failure	500	{object}	map[string]string
//	@Router		/clientes [get]
func (ctl *ClienteController) Listar(c *gin.Context) {
	clientes := make([]models.Cliente, 0)
	if err := ctl.db.WithContext(c.Request.Context()).Order("id ASC").Find(&clientes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// Buscar handles GET /clientes/:id
//
//	@Summary	Busca um cliente por ID
//	@Tags		Clientes
//	@Produce	json
//	@Param		id	path		int	true	"ID do cliente"
//	@Success	200	{object}	models.Cliente
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/clientes/{id} [get]
func (ctl *ClienteController) Buscar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cliente models.Cliente
	if err := ctl.db.WithContext(c.Request.Context()).First(&cliente, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// Atualizar handles PUT /clientes/:id
//
//	@Summary	Atualiza um cliente existente
//	@Tags		Clientes
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID do cliente"
//	@Param		cliente	body		ClienteRequest	true	"Dados do cliente"
//	@Success	200		{object}	models.Cliente
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/clientes/{id} [put]
func (ctl *ClienteController) Atualizar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req ClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cliente models.Cliente
	if err := ctl.db.WithContext(c.Request.Context()).First(&cliente, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cliente.Nome = req.Nome
	cliente.Email = req.Email
	cliente.Telefone = req.Telefone
	if err := ctl.db.WithContext(c.Request.Context()).Save(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// Excluir handles DELETE /clientes/:id
//
//	@Summary	Deleta um cliente
//	@Tags		Clientes
//	@Param		id	path	int	true	"ID do cliente"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/clientes/{id} [delete]
func (ctl *ClienteController) Excluir(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := ctl.db.WithContext(c.Request.Context()).Delete(&models.Cliente{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cliente não encontrado"})
		return
	}

	c.Status(http.StatusNoContent)
}
