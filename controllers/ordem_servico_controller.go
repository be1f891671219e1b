package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"oficina_xpto/services"
	"oficina_xpto/utils"
)

// ItemPecaRequest is one part line of a service-order creation request.
type ItemPecaRequest struct {
	PecaID         uint    `json:"peca_id"`
	Quantidade     int     `json:"quantidade"`
	PrecoNoMomento float64 `json:"preco_no_momento"`
}

// CriarOrdemServicoRequest represents the request body for creating an ordem
// de serviço with its parts.
type CriarOrdemServicoRequest struct {
	VeiculoID         uint              `json:"veiculo_id"`
	MecanicoID        *uint             `json:"mecanico_id"`
	DescricaoProblema string            `json:"descricao_problema"`
	Status            string            `json:"status"`
	Pecas             []ItemPecaRequest `json:"pecas"`
}

// AtualizarOrdemServicoRequest represents the partial update body. Omitted
// fields keep the stored values.
type AtualizarOrdemServicoRequest struct {
	Status            string     `json:"status"`
	MecanicoID        *uint      `json:"mecanico_id"`
	DataFechamento    *time.Time `json:"data_fechamento"`
	DescricaoProblema string     `json:"descricao_problema"`
}

// OrdemServicoController handles HTTP requests for ordens de serviço.
type OrdemServicoController struct {
	service *services.OrdemServicoService
}

// NewOrdemServicoController builds the controller and its service from the
// database handle.
func NewOrdemServicoController(db *gorm.DB) *OrdemServicoController {
	return &OrdemServicoController{service: services.NewOrdemServicoService(db)}
}

// Criar handles POST /ordens-servico
//
//	@Summary	Cria uma nova Ordem de Serviço e associa suas peças
//	@Tags		OrdensServico
//	@Accept		json
//	@Produce	json
//	@Param		ordem	body		CriarOrdemServicoRequest	true	"Dados da O.S."
//	@Success	201		{object}	models.OrdemServico
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/ordens-servico [post]
func (ctl *OrdemServicoController) Criar(c *gin.Context) {
	var req CriarOrdemServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itens := make([]services.ItemPecaInput, 0, len(req.Pecas))
	for _, peca := range req.Pecas {
		itens = append(itens, services.ItemPecaInput{
			PecaID:         peca.PecaID,
			Quantidade:     peca.Quantidade,
			PrecoNoMomento: peca.PrecoNoMomento,
		})
	}

	ordem, err := ctl.service.Criar(c.Request.Context(), services.CriarOrdemInput{
		VeiculoID:         req.VeiculoID,
		MecanicoID:        req.MecanicoID,
		DescricaoProblema: req.DescricaoProblema,
		Status:            req.Status,
	}, itens)
	if err != nil {
		if errors.Is(err, services.ErrReferenciaInvalida) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Erro: veiculo_id, mecanico_id ou alguma peca_id não existe."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ordem)
}

// Listar handles GET /ordens-servico
//
//	@Summary	Lista todas as Ordens de Serviço
//	@Tags		OrdensServico
//	@Produce	json
//	@Success	200	{array}		models.OrdemServico
//	@Failure	500	{object}	map[string]string
//	@Router		/ordens-servico [get]
func (ctl *OrdemServicoController) Listar(c *gin.Context) {
	ordens, err := ctl.service.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ordens)
}

// Buscar handles GET /ordens-servico/:id
//
//	@Summary	Busca uma O.S. por ID (com suas peças)
//	@Tags		OrdensServico
//	@Produce	json
//	@Param		id	path		int	true	"ID da O.S."
//	@Success	200	{object}	services.OrdemServicoDetalhada
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/ordens-servico/{id} [get]
func (ctl *OrdemServicoController) Buscar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ordem, err := ctl.service.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOrdemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ordem de Serviço não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, ordem)
}

// Atualizar handles PUT /ordens-servico/:id
//
//	@Summary	Atualiza uma O.S. (status, mecânico, etc.)
//	@Tags		OrdensServico
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"ID da O.S."
//	@Param		ordem	body		AtualizarOrdemServicoRequest	true	"Campos a atualizar"
//	@Success	200		{object}	models.OrdemServico
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/ordens-servico/{id} [put]
func (ctl *OrdemServicoController) Atualizar(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req AtualizarOrdemServicoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ordem, err := ctl.service.Atualizar(c.Request.Context(), id, services.AtualizarOrdemInput{
		Status:            req.Status,
		MecanicoID:        req.MecanicoID,
		DataFechamento:    req.DataFechamento,
		DescricaoProblema: req.DescricaoProblema,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrdemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Ordem de Serviço não encontrada"})
		case errors.Is(err, services.ErrReferenciaInvalida):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Erro: O mecanico_id fornecido não existe."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, ordem)
}

// Excluir handles DELETE /ordens-servico/:id
//
//	@Summary	Deleta uma O.S.
//	@Tags		OrdensServico
//	@Param		id	path	int	true	"ID da O.S."
//	@Success	204
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/ordens-servico/{id} [delete]
func (ctl *OrdemServicoController) Excluir(c *gin.Context) {
	id, err := utils.ParseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctl.service.Excluir(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrOrdemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Ordem de Serviço não encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
