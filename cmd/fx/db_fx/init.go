package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"civix/internal/infra"
	"civix/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
