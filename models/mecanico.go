package models

// Mecanico represents a mechanic employed by the shop
type Mecanico struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Nome          string `gorm:"not null" json:"nome"`
	Especialidade string `json:"especialidade"`
}

// TableName specifies the table name for the Mecanico model
func (Mecanico) TableName() string {
	return "mecanicos"
}
