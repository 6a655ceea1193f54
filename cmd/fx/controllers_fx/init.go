package controllers_fx

import (
	"go.uber.org/fx"

	"civix/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewOrganizationController),
	fx.Provide(controllers.NewElectionController),
	fx.Provide(controllers.NewPostController),
	fx.Provide(controllers.NewNominationController),
	fx.Provide(controllers.NewCandidateController))
