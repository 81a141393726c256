package controllers_fx

import (
	"go.uber.org/fx"

	"soulmate/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewBiodataController),
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewStoryController))
