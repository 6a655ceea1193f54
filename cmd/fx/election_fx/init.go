package election_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"civix/internal/repositories"
	"civix/internal/services"
)

var Module = fx.Provide(
	provideElectionService, provideElectionRepo)

func provideElectionRepo(db *gorm.DB) repositories.ElectionRepository {
	return repositories.NewElectionRepository(db)
}

func provideElectionService(
	electionRepo repositories.ElectionRepository,
	accountRepo repositories.AccountRepository,
) services.ElectionServiceInterface {
	return services.NewElectionService(electionRepo, accountRepo)
}
