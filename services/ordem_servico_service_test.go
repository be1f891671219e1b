package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"oficina_xpto/models"
	"oficina_xpto/tests/testutil"
)

func setupService(t *testing.T) (*OrdemServicoService, *gorm.DB, models.Veiculo, models.Mecanico, []models.Peca) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	_, veiculo, mecanico, pecas := testutil.SeedOficina(t, db)
	return NewOrdemServicoService(db), db, veiculo, mecanico, pecas
}

func TestCriarEBuscarComItens(t *testing.T) {
	service, db, veiculo, _, pecas := setupService(t)
	ctx := context.Background()

	ordem, err := service.Criar(ctx, CriarOrdemInput{
		VeiculoID:         veiculo.ID,
		DescricaoProblema: "Troca de óleo",
		Status:            models.StatusAberta,
	}, []ItemPecaInput{
		{PecaID: pecas[0].ID, Quantidade: 4, PrecoNoMomento: 45.50},
		{PecaID: pecas[1].ID, Quantidade: 1, PrecoNoMomento: 30.00},
	})
	require.NoError(t, err)
	assert.NotZero(t, ordem.ID, "Creation should return the generated id")
	assert.False(t, ordem.DataAbertura.IsZero(), "Opening timestamp should be set at creation")

	detalhe, err := service.BuscarPorID(ctx, ordem.ID)
	require.NoError(t, err)
	require.Len(t, detalhe.Pecas, 2)
	assert.Equal(t, pecas[0].ID, detalhe.Pecas[0].PecaID)
	assert.Equal(t, "Filtro de óleo", detalhe.Pecas[0].Nome, "Items should carry the part name from the catalog")
	assert.Equal(t, 4, detalhe.Pecas[0].Quantidade)
	assert.Equal(t, 45.50, detalhe.Pecas[0].PrecoNoMomento)
	assert.Equal(t, pecas[1].ID, detalhe.Pecas[1].PecaID)
	assert.Equal(t, 30.00, detalhe.Pecas[1].PrecoNoMomento)

	// A later catalog price edit must not touch the frozen price.
	require.NoError(t, db.Model(&models.Peca{}).Where("id = ?", pecas[0].ID).Update("preco_unidade", 99.99).Error)
	detalhe, err = service.BuscarPorID(ctx, ordem.ID)
	require.NoError(t, err)
	assert.Equal(t, 45.50, detalhe.Pecas[0].PrecoNoMomento, "Stored price must stay frozen at creation time")
}

func TestCriarSemItens(t *testing.T) {
	service, _, veiculo, _, _ := setupService(t)
	ctx := context.Background()

	ordem, err := service.Criar(ctx, CriarOrdemInput{
		VeiculoID: veiculo.ID,
		Status:    models.StatusAberta,
	}, nil)
	require.NoError(t, err, "An empty item list is not an error")

	detalhe, err := service.BuscarPorID(ctx, ordem.ID)
	require.NoError(t, err)
	assert.Empty(t, detalhe.Pecas)
}

func TestCriarComPecaInexistenteDescartaTudo(t *testing.T) {
	service, db, veiculo, _, pecas := setupService(t)
	ctx := context.Background()

	_, err := service.Criar(ctx, CriarOrdemInput{
		VeiculoID: veiculo.ID,
		Status:    models.StatusAberta,
	}, []ItemPecaInput{
		{PecaID: pecas[0].ID, Quantidade: 1, PrecoNoMomento: 45.50},
		{PecaID: 9999, Quantidade: 2, PrecoNoMomento: 10.00},
	})
	require.ErrorIs(t, err, ErrReferenciaInvalida)

	// Nothing from the failed attempt may be visible: no header, no items.
	var contagemOrdens int64
	require.NoError(t, db.Model(&models.OrdemServico{}).Count(&contagemOrdens).Error)
	assert.Zero(t, contagemOrdens, "Header insert must be rolled back")

	var contagemItens int64
	require.NoError(t, db.Model(&models.ItemPeca{}).Count(&contagemItens).Error)
	assert.Zero(t, contagemItens, "Item inserts must be rolled back")

	ordens, err := service.Listar(ctx)
	require.NoError(t, err)
	assert.Empty(t, ordens)
}

func TestCriarComVeiculoInexistente(t *testing.T) {
	service, _, _, _, _ := setupService(t)

	_, err := service.Criar(context.Background(), CriarOrdemInput{
		VeiculoID: 9999,
		Status:    models.StatusAberta,
	}, nil)
	assert.ErrorIs(t, err, ErrReferenciaInvalida)
}

func TestAtualizarMantemCamposOmitidos(t *testing.T) {
	service, _, veiculo, mecanico, _ := setupService(t)
	ctx := context.Background()

	ordem, err := service.Criar(ctx, CriarOrdemInput{
		VeiculoID:         veiculo.ID,
		DescricaoProblema: "Troca de óleo",
		Status:            models.StatusAberta,
	}, nil)
	require.NoError(t, err)

	// Only status supplied: everything else keeps its stored value.
	atualizada, err := service.Atualizar(ctx, ordem.ID, AtualizarOrdemInput{Status: models.StatusFechada})
	require.NoError(t, err)
	assert.Equal(t, models.StatusFechada, atualizada.Status)
	assert.Equal(t, "Troca de óleo", atualizada.DescricaoProblema)
	assert.Nil(t, atualizada.MecanicoID)
	assert.Equal(t, ordem.VeiculoID, atualizada.VeiculoID)

	// Assign the mechanic and a closing timestamp.
	fechamento := time.Date(2025, 11, 10, 14, 30, 0, 0, time.UTC)
	atualizada, err = service.Atualizar(ctx, ordem.ID, AtualizarOrdemInput{
		MecanicoID:     &mecanico.ID,
		DataFechamento: &fechamento,
	})
	require.NoError(t, err)
	require.NotNil(t, atualizada.MecanicoID)
	assert.Equal(t, mecanico.ID, *atualizada.MecanicoID)
	require.NotNil(t, atualizada.DataFechamento)
	assert.True(t, atualizada.DataFechamento.Equal(fechamento))
	assert.Equal(t, models.StatusFechada, atualizada.Status, "Earlier update must survive")

	// An explicit empty string cannot clear a stored value.
	atualizada, err = service.Atualizar(ctx, ordem.ID, AtualizarOrdemInput{Status: "", DescricaoProblema: ""})
	require.NoError(t, err)
	assert.Equal(t, models.StatusFechada, atualizada.Status)
	assert.Equal(t, "Troca de óleo", atualizada.DescricaoProblema)
	require.NotNil(t, atualizada.MecanicoID, "Mechanic assignment cannot be unset")
}

func TestAtualizarMecanicoInexistente(t *testing.T) {
	service, db, veiculo, mecanico, _ := setupService(t)
	ctx := context.Background()

	ordem, err := service.Criar(ctx, CriarOrdemInput{
		VeiculoID:  veiculo.ID,
		MecanicoID: &mecanico.ID,
		Status:     models.StatusAberta,
	}, nil)
	require.NoError(t, err)

	inexistente := uint(9999)
	_, err = service.Atualizar(ctx, ordem.ID, AtualizarOrdemInput{MecanicoID: &inexistente})
	require.ErrorIs(t, err, ErrReferenciaInvalida)

	// Stored assignment stays untouched.
	var atual models.OrdemServico
	require.NoError(t, db.First(&atual, ordem.ID).Error)
	require.NotNil(t, atual.MecanicoID)
	assert.Equal(t, mecanico.ID, *atual.MecanicoID)
}

func TestOperacoesEmOrdemInexistente(t *testing.T) {
	service, _, _, _, _ := setupService(t)
	ctx := context.Background()

	_, err := service.BuscarPorID(ctx, 9999)
	assert.ErrorIs(t, err, ErrOrdemNotFound)

	_, err = service.Atualizar(ctx, 9999, AtualizarOrdemInput{Status: models.StatusFechada})
	assert.ErrorIs(t, err, ErrOrdemNotFound)

	err = service.Excluir(ctx, 9999)
	assert.ErrorIs(t, err, ErrOrdemNotFound)
}

func TestListarOrdenadoPorID(t *testing.T) {
	service, _, veiculo, _, _ := setupService(t)
	ctx := context.Background()

	var ids []uint
	for i := 0; i < 3; i++ {
		ordem, err := service.Criar(ctx, CriarOrdemInput{VeiculoID: veiculo.ID, Status: models.StatusAberta}, nil)
		require.NoError(t, err)
		ids = append(ids, ordem.ID)
	}

	// Delete the middle one and create another; the listing stays ascending.
	require.NoError(t, service.Excluir(ctx, ids[1]))
	ordem, err := service.Criar(ctx, CriarOrdemInput{VeiculoID: veiculo.ID, Status: models.StatusAberta}, nil)
	require.NoError(t, err)

	ordens, err := service.Listar(ctx)
	require.NoError(t, err)
	require.Len(t, ordens, 3)
	assert.Equal(t, ids[0], ordens[0].ID)
	assert.Equal(t, ids[2], ordens[1].ID)
	assert.Equal(t, ordem.ID, ordens[2].ID)
}

func TestExcluirRemoveItens(t *testing.T) {
	service, db, veiculo, _, pecas := setupService(t)
	ctx := context.Background()

	ordem, err := service.Criar(ctx, CriarOrdemInput{VeiculoID: veiculo.ID, Status: models.StatusAberta}, []ItemPecaInput{
		{PecaID: pecas[0].ID, Quantidade: 2, PrecoNoMomento: 45.50},
	})
	require.NoError(t, err)

	require.NoError(t, service.Excluir(ctx, ordem.ID))

	var contagemItens int64
	require.NoError(t, db.Model(&models.ItemPeca{}).Count(&contagemItens).Error)
	assert.Zero(t, contagemItens, "Deleting the order must cascade to its items")

	_, err = service.BuscarPorID(ctx, ordem.ID)
	assert.ErrorIs(t, err, ErrOrdemNotFound)
}
