package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oficina_xpto/models"
	"oficina_xpto/tests/testutil"
)

func setupVeiculoRouter(t *testing.T) (*gin.Engine, models.Cliente) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.OpenTestDB(t)
	cliente := models.Cliente{Nome: "Maria Oliveira", Email: "maria@example.com"}
	require.NoError(t, db.Create(&cliente).Error)

	ctl := NewVeiculoController(db)
	router := gin.New()
	grupo := router.Group("/veiculos")
	{
		grupo.POST("", ctl.Criar)
		grupo.GET("", ctl.Listar)
		grupo.GET("/:id", ctl.Buscar)
		grupo.PUT("/:id", ctl.Atualizar)
		grupo.DELETE("/:id", ctl.Excluir)
	}
	return router, cliente
}

func TestVeiculoCriar(t *testing.T) {
	router, cliente := setupVeiculoRouter(t)

	w := doJSON(t, router, http.MethodPost, "/veiculos", map[string]any{
		"placa":      "XYZ9A88",
		"modelo":     "Uno Mille",
		"ano":        2009,
		"cliente_id": cliente.ID,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var veiculo map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &veiculo))
	assert.Equal(t, "XYZ9A88", veiculo["placa"])
	assert.Equal(t, float64(cliente.ID), veiculo["cliente_id"])
}

func TestVeiculoCriarSemPlaca(t *testing.T) {
	router, cliente := setupVeiculoRouter(t)

	w := doJSON(t, router, http.MethodPost, "/veiculos", map[string]any{
		"modelo":     "Uno Mille",
		"cliente_id": cliente.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Placa e cliente_id são obrigatórios.", response["error"])
}

func TestVeiculoCriarComClienteInexistente(t *testing.T) {
	router, _ := setupVeiculoRouter(t)

	w := doJSON(t, router, http.MethodPost, "/veiculos", map[string]any{
		"placa":      "XYZ9A88",
		"cliente_id": 9999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Erro: O cliente_id fornecido não existe.", response["error"])
}

func TestVeiculoAtualizarComClienteInexistente(t *testing.T) {
	router, cliente := setupVeiculoRouter(t)

	w := doJSON(t, router, http.MethodPost, "/veiculos", map[string]any{
		"placa":      "XYZ9A88",
		"cliente_id": cliente.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var veiculo map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &veiculo))
	id := int(veiculo["id"].(float64))

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/veiculos/%d", id), map[string]any{
		"placa":      "XYZ9A88",
		"cliente_id": 9999,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Erro: O cliente_id fornecido não existe.", response["error"])
}

func TestVeiculoNotFound(t *testing.T) {
	router, _ := setupVeiculoRouter(t)

	w := doJSON(t, router, http.MethodGet, "/veiculos/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Veículo não encontrado", response["error"])
}
