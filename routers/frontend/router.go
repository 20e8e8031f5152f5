package frontend

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/eventloop"
	"github.com/unicsmcr/hs_activities/routers/models"
	"github.com/unicsmcr/hs_activities/ui/page"
	"go.uber.org/zap"
)

// Router serves the activities page and turns its form posts into page events
type Router interface {
	models.Router
	Page(*gin.Context)
	UserIcon(*gin.Context)
	OpenLogin(*gin.Context)
	CloseModal(*gin.Context)
	ModalBackground(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	SignUp(*gin.Context)
	Unregister(*gin.Context)
}

type frontendRouter struct {
	models.BaseRouter
	logger *zap.Logger
	cfg    *config.AppConfig
	loop   *eventloop.Loop
	page   *page.Page
}

// NewRouter creates a Router for the given page. Every access to the page
// happens on loop.
func NewRouter(logger *zap.Logger, cfg *config.AppConfig, loop *eventloop.Loop, page *page.Page) Router {
	return &frontendRouter{
		logger: logger,
		cfg:    cfg,
		loop:   loop,
		page:   page,
	}
}

func (r *frontendRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", r.Page)

	ui := routerGroup.Group("ui")
	ui.POST("user-icon", r.UserIcon)
	ui.POST("open-login", r.OpenLogin)
	ui.POST("modals/:modal/close", r.CloseModal)
	ui.POST("modals/:modal/background", r.ModalBackground)
	ui.POST("login", r.Login)
	ui.POST("logout", r.Logout)
	ui.POST("signup", r.SignUp)
	ui.POST("unregister", r.Unregister)
}
