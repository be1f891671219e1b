package models

import (
	"time"
)

// Status values observed for an ordem de serviço. The column is an open
// string, these are not enforced by the store.
const (
	StatusAberta  = "ABERTA"
	StatusFechada = "FECHADA"
)

// OrdemServico represents a service order header. It owns its ItemPeca rows;
// veiculo_id and data_abertura are set at creation and never updated.
type OrdemServico struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	DataAbertura      time.Time  `gorm:"not null" json:"data_abertura"`
	DataFechamento    *time.Time `json:"data_fechamento"` // nullable, set when the order is closed
	Status            string     `json:"status"`
	DescricaoProblema string     `json:"descricao_problema"`
	VeiculoID         uint       `gorm:"not null;index" json:"veiculo_id"` // foreign key to veiculos table
	Veiculo           *Veiculo   `gorm:"foreignKey:VeiculoID" json:"-"`
	MecanicoID        *uint      `gorm:"index" json:"mecanico_id"` // nullable, assigned later
	Mecanico          *Mecanico  `gorm:"foreignKey:MecanicoID" json:"-"`
	Itens             []ItemPeca `gorm:"foreignKey:OrdemServicoID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for the OrdemServico model
func (OrdemServico) TableName() string {
	return "ordens_servico"
}

// ItemPeca represents a part used on a service order. PrecoNoMomento freezes
// the part price at order creation, so later catalog edits never affect it.
type ItemPeca struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OrdemServicoID uint    `gorm:"not null;index" json:"ordem_servico_id"`
	PecaID         uint    `gorm:"not null;index" json:"peca_id"` // foreign key to pecas table
	Peca           *Peca   `gorm:"foreignKey:PecaID" json:"-"`
	Quantidade     int     `gorm:"not null;check:quantidade > 0" json:"quantidade"`
	PrecoNoMomento float64 `gorm:"type:numeric(10,2);not null" json:"preco_no_momento"`
}

// TableName specifies the table name for the ItemPeca model
func (ItemPeca) TableName() string {
	return "itens_peca"
}
