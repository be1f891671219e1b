package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"oficina_xpto/models"
)

var (
	// ErrOrdemNotFound is returned when the target ordem de serviço does not
	// exist. Handlers should translate this into an HTTP 404 response.
	ErrOrdemNotFound = errors.New("ordem de serviço não encontrada")

	// ErrReferenciaInvalida is returned when a supplied veiculo_id,
	// mecanico_id or peca_id does not resolve to an existing row. Handlers
	// should translate this into an HTTP 400 response.
	ErrReferenciaInvalida = errors.New("referência inválida")
)

// ItemPecaInput is one part line of a creation request.
type ItemPecaInput struct {
	PecaID         uint
	Quantidade     int
	PrecoNoMomento float64
}

// CriarOrdemInput carries the header fields accepted at creation.
type CriarOrdemInput struct {
	VeiculoID         uint
	MecanicoID        *uint
	DescricaoProblema string
	Status            string
}

// AtualizarOrdemInput carries the partial update fields. A zero value means
// "keep the stored value"; there is no way to clear a field once set, which
// mirrors the coalescing update of the original API.
type AtualizarOrdemInput struct {
	Status            string
	MecanicoID        *uint
	DataFechamento    *time.Time
	DescricaoProblema string
}

// ItemPecaDetalhado is a line item enriched with the part's display name.
type ItemPecaDetalhado struct {
	PecaID         uint    `json:"peca_id"`
	Nome           string  `json:"nome"`
	Quantidade     int     `json:"quantidade"`
	PrecoNoMomento float64 `json:"preco_no_momento"`
}

// OrdemServicoDetalhada is the detail view: the header with its line items
// attached.
type OrdemServicoDetalhada struct {
	models.OrdemServico
	Pecas []ItemPecaDetalhado `json:"pecas"`
}

// OrdemServicoService implements the service-order workflow: atomic creation
// of the header plus its line items, the coalescing partial update, and the
// reads. All durable state lives in the store; the service itself holds no
// mutable state and is safe for concurrent use.
type OrdemServicoService struct {
	db *gorm.DB
}

// NewOrdemServicoService builds a service bound to the given database handle.
func NewOrdemServicoService(db *gorm.DB) *OrdemServicoService {
	return &OrdemServicoService{db: db}
}

// Criar persists a new ordem de serviço and its part line items as one
// transaction. The header is inserted first to obtain the generated id, then
// each item in input order. Any failure rolls back the whole unit. The
// returned header does not carry the items; callers re-fetch via BuscarPorID.
func (s *OrdemServicoService) Criar(ctx context.Context, input CriarOrdemInput, itens []ItemPecaInput) (models.OrdemServico, error) {
	ordem := models.OrdemServico{
		DataAbertura:      time.Now(),
		Status:            input.Status,
		DescricaoProblema: input.DescricaoProblema,
		VeiculoID:         input.VeiculoID,
		MecanicoID:        input.MecanicoID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ordem).Error; err != nil {
			return err
		}
		for _, item := range itens {
			registro := models.ItemPeca{
				OrdemServicoID: ordem.ID,
				PecaID:         item.PecaID,
				Quantidade:     item.Quantidade,
				PrecoNoMomento: item.PrecoNoMomento,
			}
			if err := tx.Create(&registro).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.OrdemServico{}, classificarErro(err)
	}

	return ordem, nil
}

// BuscarPorID returns the header with its line items attached, each enriched
// with the part name from the catalog.
func (s *OrdemServicoService) BuscarPorID(ctx context.Context, id uint) (OrdemServicoDetalhada, error) {
	var ordem models.OrdemServico
	if err := s.db.WithContext(ctx).First(&ordem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrdemServicoDetalhada{}, ErrOrdemNotFound
		}
		return OrdemServicoDetalhada{}, err
	}

	itens := make([]ItemPecaDetalhado, 0)
	err := s.db.WithContext(ctx).
		Table("itens_peca").
		Select("itens_peca.peca_id, pecas.nome, itens_peca.quantidade, itens_peca.preco_no_momento").
		Joins("JOIN pecas ON pecas.id = itens_peca.peca_id").
		Where("itens_peca.ordem_servico_id = ?", id).
		Scan(&itens).Error
	if err != nil {
		return OrdemServicoDetalhada{}, err
	}

	return OrdemServicoDetalhada{OrdemServico: ordem, Pecas: itens}, nil
}

// Listar returns all headers ordered by ascending id, without items.
func (s *OrdemServicoService) Listar(ctx context.Context) ([]models.OrdemServico, error) {
	ordens := make([]models.OrdemServico, 0)
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&ordens).Error; err != nil {
		return nil, err
	}
	return ordens, nil
}

// Atualizar merges the supplied fields over the stored row and persists the
// result. Fields left at their zero value keep the previous stored value.
// veiculo_id and data_abertura are never touched.
func (s *OrdemServicoService) Atualizar(ctx context.Context, id uint, input AtualizarOrdemInput) (models.OrdemServico, error) {
	var ordem models.OrdemServico
	if err := s.db.WithContext(ctx).First(&ordem, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.OrdemServico{}, ErrOrdemNotFound
		}
		return models.OrdemServico{}, err
	}

	if input.Status != "" {
		ordem.Status = input.Status
	}
	if input.MecanicoID != nil {
		ordem.MecanicoID = input.MecanicoID
	}
	if input.DataFechamento != nil {
		ordem.DataFechamento = input.DataFechamento
	}
	if input.DescricaoProblema != "" {
		ordem.DescricaoProblema = input.DescricaoProblema
	}

	if err := s.db.WithContext(ctx).Save(&ordem).Error; err != nil {
		return models.OrdemServico{}, classificarErro(err)
	}

	return ordem, nil
}

// Excluir deletes the header; the store cascades the delete to its items.
func (s *OrdemServicoService) Excluir(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.OrdemServico{}, id)
	if result.Error != nil {
		return classificarErro(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOrdemNotFound
	}
	return nil
}

// classificarErro maps store errors to the caller-facing categories. Foreign
// key violations become ErrReferenciaInvalida; everything else passes through
// unchanged.
func classificarErro(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", ErrReferenciaInvalida, err)
	}
	return err
}
