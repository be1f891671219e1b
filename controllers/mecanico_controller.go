package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"oficina_xpto/models"
	"oficina_xpto/utils"
)

// MecanicoRequest represents the request body for creating or updating a
// mecânico.
type MecanicoRequest struct {
	Nome          string `json:"nome"`
	Especialidade string `json:"especialidade"`
}

// MecanicoController handles HTTP requests for mecânicos.
type MecanicoController struct {
	db *gorm.DB
}

func NewMecanicoController(db *gorm.DB) *MecanicoController {
	return &MecanicoController{db: db}
}

// Criar handles POST /mecanicos
//
//	@Summary	Registra um novo mecânico
//	@Tags		Mecanicos
//	@Accept		json
//	@Produce	json
//	@Param		mecanico	body		MecanicoRequest	true	"Dados do mecânico"
//	@Success	201			{object}	models.Mecanico
//	@Failure	500			{object}	map[string]string
//	@Router		/mecanicos [post]
func (ctl *MecanicoController) Criar(c *gin.Context) {
	var req MecanicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mecanico := models.Mecanico{Nome: req.Nome, Especialidade: req.Especialidade}
	if err := ctl.db.WithContext(c.Request.Context()).Create(&mecanico).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, mecanico)
}

// Listar handles GET /mecanicos
//
//	@Summary	Lista todos os mecânicos
//	@Tags		Mecanicos
//	@Produce	json
//	@Success	200	{array}		models.Mecanico
//	@Failure	500	{object}	map[string]string
//	@Router		/mecanicos [get]
func (ctl *MecanicoController) Listar(c *gin.Context) {
	mecanicos := make([]models.Mecanico, 0)
	if err := ctl.db.WithContext(c.Request.Context()).Order("id ASC").Find(&mecanicos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, mecanicos)
}

// Buscar handles GET /mecanicos/:id
//
//	@Summary	Busca um mecânico por ID
//	@Tags		Mecanicos
//	@Produce	json
//	@Param		id	path		int	true	"ID do mecânico"
//	@Success	200	{object}	models.Mecanico
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/mecanicos/{id} [get]
func (ctl *MecanicoController) Buscar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var mecanico models.Mecanico
	if err := ctl.db.WithContext(c.Request.Context()).First(&mecanico, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mecânico não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mecanico)
}

// Atualizar handles PUT /mecanicos/:id
//
//	@Summary	Atualiza um mecânico existente
//	@Tags		Mecanicos
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int				true	"ID do mecânico"
//	@Param		mecanico	body		MecanicoRequest	true	"Dados do mecânico"
//	@Success	200			{object}	models.Mecanico
//	@Failure	404			{object}	map[string]string
//	@Failure	500			{object}	map[string]string
//	@Router		/mecanicos/{id} [put]
func (ctl *MecanicoController) Atualizar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req MecanicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var mecanico models.Mecanico
	if err := ctl.db.WithContext(c.Request.Context()).First(&mecanico, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mecânico não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	mecanico.Nome = req.Nome
	mecanico.Especialidade = req.Especialidade
	if err := ctl.db.WithContext(c.Request.Context()).Save(&mecanico).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, mecanico)
}

// Excluir handles DELETE /mecanicos/:id
//
//	@Summary	Deleta um mecânico
//	@Tags		Mecanicos
//	@Param		id	path	int	true	"ID do mecânico"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/mecanicos/{id} [delete]
func (ctl *MecanicoController) Excluir(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := ctl.db.WithContext(c.Request.Context()).Delete(&models.Mecanico{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Mecânico não encontrado"})
		return
	}

	c.Status(http.StatusNoContent)
}
