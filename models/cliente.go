package models

// Cliente represents a customer of the repair shop
type Cliente struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Nome     string `gorm:"not null" json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// TableName specifies the table name for the Cliente model
func (Cliente) TableName() string {
	return "clientes"
}
