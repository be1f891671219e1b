package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"oficina_xpto/models"
	"oficina_xpto/utils"
)

// PecaRequest represents the request body for creating or updating a peça.
type PecaRequest struct {
	Nome         string  `json:"nome"`
	PrecoUnidade float64 `json:"preco_unidade"`
	Estoque      int     `json:"estoque"`
}

// PecaController handles HTTP requests for peças.
type PecaController struct {
	db *gorm.DB
}

func NewPecaController(db *gorm.DB) *PecaController {
	return &PecaController{db: db}
}

// Criar handles POST /pecas
//
//	@Summary	Registra uma nova peça
//	@Tags		Pecas
//	@Accept		json
//	@Produce	json
//	@Param		peca	body		PecaRequest	true	"Dados da peça"
//	@Success	201		{object}	models.Peca
//	@Failure	500		{object}	map[string]string
//	@Router		/pecas [post]
func (ctl *PecaController) Criar(c *gin.Context) {
	var req PecaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	peca := models.Peca{Nome: req.Nome, PrecoUnidade: req.PrecoUnidade, Estoque: req.Estoque}
	if err := ctl.db.WithContext(c.Request.Context()).Create(&peca).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, peca)
}

// Listar handles GET /pecas
//
//	@Summary	Lista todas as peças
//	@Tags		Pecas
//	@Produce	json
//	@Success	200	{array}		models.Peca
//	@Failure	500	{object}	map[string]string
//	@Router		/pecas [get]
func (ctl *PecaController) Listar(c *gin.Context) {
	pecas := make([]models.Peca, 0)
	if err := ctl.db.WithContext(c.Request.Context()).Order("id ASC").Find(&pecas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pecas)
}

// Buscar handles GET /pecas/:id
//
//	@Summary	Busca uma peça por ID
//	@Tags		Pecas
//	@Produce	json
//	@Param		id	path		int	true	"ID da peça"
//	@Success	200	{object}	models.Peca
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/pecas/{id} [get]
func (ctl *PecaController) Buscar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var peca models.Peca
	if err := ctl.db.WithContext(c.Request.Context()).First(&peca, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Peça não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, peca)
}

// Atualizar handles PUT /pecas/:id
//
//	@Summary	Atualiza uma peça existente
//	@Tags		Pecas
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int			true	"ID da peça"
//	@Param		peca	body		PecaRequest	true	"Dados da peça"
//	@Success	200		{object}	models.Peca
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/pecas/{id} [put]
func (ctl *PecaController) Atualizar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req PecaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var peca models.Peca
	if err := ctl.db.WithContext(c.Request.Context()).First(&peca, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Peça não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	peca.Nome = req.Nome
	peca.PrecoUnidade = req.PrecoUnidade
	peca.Estoque = req.Estoque
	if err := ctl.db.WithContext(c.Request.Context()).Save(&peca).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, peca)
}

// Excluir handles DELETE /pecas/:id
//
//	@Summary	Deleta uma peça
//	@Tags		Pecas
//	@Param		id	path	int	true	"ID da peça"
//	@Success	204
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/pecas/{id} [delete]
func (ctl *PecaController) Excluir(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := ctl.db.WithContext(c.Request.Context()).Delete(&models.Peca{}, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Erro: Peça não pode ser deletada pois está em uso."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Peça não encontrada"})
		return
	}

	c.Status(http.StatusNoContent)
}
