package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/entities"
	"github.com/unicsmcr/hs_activities/eventloop"
	"github.com/unicsmcr/hs_activities/services"
	"github.com/unicsmcr/hs_activities/ui"
	"github.com/unicsmcr/hs_activities/utils"
	"go.uber.org/zap"
)

// Controller owns the client state of the activities page and reacts to
// page events. Every method must run on the controller's event loop.
type Controller struct {
	logger          *zap.Logger
	cfg             *config.AppConfig
	authService     services.AuthService
	activityService services.ActivityService
	view            ui.View
	loop            *eventloop.Loop
	scheduler       utils.Scheduler
	validate        *validator.Validate

	session entities.Session
}

// New creates a Controller and registers its handlers on the view
func New(logger *zap.Logger, cfg *config.AppConfig, authService services.AuthService, activityService services.ActivityService,
	view ui.View, loop *eventloop.Loop, scheduler utils.Scheduler) *Controller {
	c := &Controller{
		logger:          logger,
		cfg:             cfg,
		authService:     authService,
		activityService: activityService,
		view:            view,
		loop:            loop,
		scheduler:       scheduler,
		validate:        validator.New(),
	}
	c.bind()
	return c
}

// Start posts the initial session check and activities fetch to the loop.
// Both requests run concurrently.
func (c *Controller) Start() {
	c.loop.Post(func() {
		c.CheckSession()
		c.FetchActivities()
	})
}

func (c *Controller) bind() {
	c.view.On(ui.UserIconClicked, func(ui.Event) { c.OpenUserMenu() })
	c.view.On(ui.OpenLoginClicked, func(ui.Event) { c.OpenLogin() })
	c.view.On(ui.CloseClicked, func(e ui.Event) { c.CloseModal(e.Modal) })
	c.view.On(ui.BackgroundClicked, func(e ui.Event) { c.CloseModal(e.Modal) })
	c.view.On(ui.LoginSubmitted, func(ui.Event) { c.Login() })
	c.view.On(ui.LogoutClicked, func(ui.Event) { c.Logout() })
	c.view.On(ui.SignupSubmitted, func(ui.Event) { c.SignUp() })
}

// after runs f on the loop once d has passed. Earlier callbacks are never
// cancelled, so one may act on state set after it was scheduled.
func (c *Controller) after(d time.Duration, f func()) {
	c.scheduler.AfterFunc(d, func() {
		c.loop.Post(f)
	})
}
