package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"oficina_xpto/models"
)

// OpenTestDB opens a fresh in-memory SQLite database with foreign key
// enforcement on and the full schema migrated. Each call returns an isolated
// database; the single-connection pool keeps the in-memory store alive and
// visible to every statement.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// SeedOficina inserts one cliente, one veiculo, one mecanico and two pecas
// and returns them, giving tests valid references to build ordens de serviço
// on top of.
func SeedOficina(t *testing.T, db *gorm.DB) (models.Cliente, models.Veiculo, models.Mecanico, []models.Peca) {
	t.Helper()

	cliente := models.Cliente{Nome: "João da Silva", Email: "joao@example.com", Telefone: "11 99999-0000"}
	if err := db.Create(&cliente).Error; err != nil {
		t.Fatalf("Failed to seed cliente: %v", err)
	}

	veiculo := models.Veiculo{Placa: "ABC1D23", Modelo: "Gol 1.0", Ano: 2018, ClienteID: cliente.ID}
	if err := db.Create(&veiculo).Error; err != nil {
		t.Fatalf("Failed to seed veiculo: %v", err)
	}

	mecanico := models.Mecanico{Nome: "Carlos Souza", Especialidade: "Motor"}
	if err := db.Create(&mecanico).Error; err != nil {
		t.Fatalf("Failed to seed mecanico: %v", err)
	}

	pecas := []models.Peca{
		{Nome: "Filtro de óleo", PrecoUnidade: 45.50, Estoque: 10},
		{Nome: "Pastilha de freio", PrecoUnidade: 30.00, Estoque: 8},
	}
	for i := range pecas {
		if err := db.Create(&pecas[i]).Error; err != nil {
			t.Fatalf("Failed to seed peca: %v", err)
		}
	}

	return cliente, veiculo, mecanico, pecas
}
