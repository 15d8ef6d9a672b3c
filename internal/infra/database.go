package infra

import (
	"fmt"

	"jumbox/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx. Callers run
// RunMigrations themselves so tests can point it at throwaway databases.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// RunMigrations creates or updates the schema. Also used by integration tests
// against a throwaway container database.
func RunMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return fmt.Errorf("pgcrypto extension: %w", err)
	}
	return db.AutoMigrate(
		&model.Categoria{},
		&model.Cliente{},
		&model.Sucursal{},
		&model.Producto{},
		&model.AlmacenSucursal{},
		&model.Carrito{},
		&model.ItemCarrito{},
		&model.Pedido{},
		&model.DetallePedido{},
		&model.PedidoReposicion{},
		&model.DetalleReposicion{},
	)
}
