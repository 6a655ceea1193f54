package nomination_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"civix/internal/repositories"
	"civix/internal/services"
	"civix/pkg/metrics"
)

var Module = fx.Provide(
	provideNominationService, provideNominationRepo)

func provideNominationRepo(db *gorm.DB) repositories.NominationRepository {
	return repositories.NewNominationRepository(db)
}

func provideNominationService(
	nominationRepo repositories.NominationRepository,
	electionRepo repositories.ElectionRepository,
	postRepo repositories.PostRepository,
	m *metrics.Metrics,
) services.NominationServiceInterface {
	return services.NewNominationService(nominationRepo, electionRepo, postRepo, m)
}
