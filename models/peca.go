package models

// Peca represents a part in the shop's catalog
type Peca struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Nome         string  `gorm:"not null" json:"nome"`
	PrecoUnidade float64 `gorm:"type:numeric(10,2)" json:"preco_unidade"`
	Estoque      int     `json:"estoque"`
}

// TableName specifies the table name for the Peca model
func (Peca) TableName() string {
	return "pecas"
}
