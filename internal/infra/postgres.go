package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"civix/internal/models/db_models"
	"civix/pkg/config"
)

// InitPostgresql opens the connection pool. TranslateError is on so unique
// index violations surface as gorm.ErrDuplicatedKey and can be mapped to
// conflicts instead of leaking driver errors.
func InitPostgresql(cfg *config.Config) *gorm.DB {

	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
	})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Organization{},
		&db_models.Election{},
		&db_models.Post{},
		&db_models.Nomination{},
		&db_models.Vote{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
