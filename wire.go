//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/controller"
	"github.com/unicsmcr/hs_activities/environment"
	"github.com/unicsmcr/hs_activities/eventloop"
	"github.com/unicsmcr/hs_activities/routers"
	"github.com/unicsmcr/hs_activities/routers/frontend"
	"github.com/unicsmcr/hs_activities/services/rest"
	"github.com/unicsmcr/hs_activities/ui"
	"github.com/unicsmcr/hs_activities/ui/page"
	"github.com/unicsmcr/hs_activities/utils"
)

func InitializeServer() (*Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		frontend.NewRouter,
		controller.New,
		page.New,
		wire.Bind(new(ui.View), new(*page.Page)),
		eventloop.New,
		utils.NewScheduler,
		rest.NewRestAuthService,
		rest.NewRestActivityService,
		rest.NewClient,
		config.NewAppConfig,
		environment.NewEnv,
		utils.NewLogger,
	)
	return &Server{}, nil
}
