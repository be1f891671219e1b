package models

// Veiculo represents a customer's vehicle
type Veiculo struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Placa     string   `gorm:"not null" json:"placa"`
	Modelo    string   `json:"modelo"`
	Ano       int      `json:"ano"`
	ClienteID uint     `gorm:"not null;index" json:"cliente_id"` // foreign key to clientes table
	Cliente   *Cliente `gorm:"foreignKey:ClienteID" json:"-"`
}

// TableName specifies the table name for the Veiculo model
func (Veiculo) TableName() string {
	return "veiculos"
}
