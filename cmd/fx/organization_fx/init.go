package organization_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"civix/internal/repositories"
	"civix/internal/services"
)

var Module = fx.Provide(
	provideOrganizationService, provideOrganizationRepo)

func provideOrganizationRepo(db *gorm.DB) repositories.OrganizationRepository {
	return repositories.NewOrganizationRepository(db)
}

func provideOrganizationService(orgRepo repositories.OrganizationRepository) services.OrganizationServiceInterface {
	return services.NewOrganizationService(orgRepo)
}
