package post_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"civix/internal/repositories"
	"civix/internal/services"
)

var Module = fx.Provide(
	providePostService, providePostRepo)

func providePostRepo(db *gorm.DB) repositories.PostRepository {
	return repositories.NewPostRepository(db)
}

func providePostService(
	postRepo repositories.PostRepository,
	electionRepo repositories.ElectionRepository,
) services.PostServiceInterface {
	return services.NewPostService(postRepo, electionRepo)
}
