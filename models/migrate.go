package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table, referenced
// tables first so foreign key constraints can be created.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Cliente{},
		&Veiculo{},
		&Mecanico{},
		&Peca{},
		&OrdemServico{},
		&ItemPeca{},
	)
}
