package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"civix/internal/repositories"
	"civix/internal/services"
	mem "civix/pkg/memcache"
	"civix/pkg/metrics"
)

var Module = fx.Provide(
	provideAccountService, provideUserService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	electionRepo repositories.ElectionRepository,
	mailService services.IMailService,
	memcache mem.RevokedTokenStore,
	m *metrics.Metrics,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, electionRepo, mailService, memcache, m)
}

func provideUserService(accountRepo repositories.AccountRepository) services.UserServiceInterface {
	return services.NewUserService(accountRepo)
}
