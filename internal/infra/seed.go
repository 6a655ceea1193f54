package infra

import (
	"log"

	"gorm.io/gorm"

	"civix/internal/models/db_models"
	"civix/pkg/config"
	"civix/pkg/utils"
)

// SeedDefaultAdmin creates the bootstrap admin account if no account with the
// configured email exists. Safe to run on every startup.
func SeedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.DefaultAdminPassword == "" {
		log.Println("DEFAULT_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var count int64
	if err := db.Model(&db_models.Account{}).
		Where("email = ?", cfg.DefaultAdminEmail).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(cfg.DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := db_models.Account{
		Name:         "Administrator",
		Email:        cfg.DefaultAdminEmail,
		Phone:        "0000000000",
		PasswordHash: hash,
		Role:         db_models.RoleAdmin,
		IsVerified:   true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seeded default admin account %s", cfg.DefaultAdminEmail)
	return nil
}
