package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"oficina_xpto/models"
	"oficina_xpto/utils"
)

// VeiculoRequest represents the request body for creating or updating a
// veículo.
type VeiculoRequest struct {
	Placa     string `json:"placa"`
	Modelo    string `json:"modelo"`
	Ano       int    `json:"ano"`
	ClienteID uint   `json:"cliente_id"`
}

// VeiculoController handles HTTP requests for veículos.
type VeiculoController struct {
	db *gorm.DB
}

func NewVeiculoController(db *gorm.DB) *VeiculoController {
	return &VeiculoController{db: db}
}

// Criar handles POST /veiculos
//
//	@Summary	Registra um novo veículo
//	@Tags		Veiculos
//	@Accept		json
//	@Produce	json
//	@Param		veiculo	body		VeiculoRequest	true	"Dados do veículo"
//	@Success	201		{object}	models.Veiculo
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/veiculos [post]
func (ctl *VeiculoController) Criar(c *gin.Context) {
	var req VeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Placa == "" || req.ClienteID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Placa e cliente_id são obrigatórios."})
		return
	}

	veiculo := models.Veiculo{Placa: req.Placa, Modelo: req.Modelo, Ano: req.Ano, ClienteID: req.ClienteID}
	if err := ctl.db.WithContext(c.Request.Context()).Create(&veiculo).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Erro: O cliente_id fornecido não existe."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, veiculo)
}

// Listar handles GET /veiculos
//
//	@Summary	Lista todos os veículos
//	@Tags		Veiculos
//	@Produce	json
//	@Success	200	{array}		models.Veiculo
//	@Failure	500	{object}	map[string]string
//	@Router		/veiculos [get]
func (ctl *VeiculoController) Listar(c *gin.Context) {
	veiculos := make([]models.Veiculo, 0)
	if err := ctl.db.WithContext(c.Request.Context()).Order("id ASC").Find(&veiculos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, veiculos)
}

// Buscar handles GET /veiculos/:id
//
//	@Summary	Busca um veículo por ID
//	@Tags		Veiculos
//	@Produce	json
//	@Param		id	path		int	true	"ID do veículo"
//	@Success	200	{object}	models.Veiculo
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/veiculos/{id} [get]
func (ctl *VeiculoController) Buscar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var veiculo models.Veiculo
	if err := ctl.db.WithContext(c.Request.Context()).First(&veiculo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Veículo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, veiculo)
}

// Atualizar handles PUT /veiculos/:id
//
//	@Summary	Atualiza um veículo existente
//	@Tags		Veiculos
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"ID do veículo"
//	@Param		veiculo	body		VeiculoRequest	true	"Dados do veículo"
//	@Success	200		{object}	models.Veiculo
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/veiculos/{id} [put]
func (ctl *VeiculoController) Atualizar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req VeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var veiculo models.Veiculo
	if err := ctl.db.WithContext(c.Request.Context()).First(&veiculo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Veículo não encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	veiculo.Placa = req.Placa
	veiculo.Modelo = req.Modelo
	veiculo.Ano = req.Ano
	veiculo.ClienteID = req.ClienteID
	if err := ctl.db.WithContext(c.Request.Context()).Save(&veiculo).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Erro: O cliente_id fornecido não existe."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, veiculo)
}

// Excluir handles DELETE /veiculos/:id
//
//	@Summary	Deleta um veículo
//	@Tags		Veiculos
//	@Param		id	path	int	true	"ID do veículo"
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/veiculos/{id} [delete]
func (ctl *VeiculoController) Excluir(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := ctl.db.WithContext(c.Request.Context()).Delete(&models.Veiculo{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Veículo não encontrado"})
		return
	}

	c.Status(http.StatusNoContent)
}
