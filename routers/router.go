package routers

import (
	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_activities/routers/frontend"
	"github.com/unicsmcr/hs_activities/routers/models"
	"go.uber.org/zap"
)

// MainRouter is the router registered on the root of the host
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	frontendRouter frontend.Router
}

// NewMainRouter creates a MainRouter serving the heartbeat and the frontend
func NewMainRouter(logger *zap.Logger, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		frontendRouter: frontendRouter,
	}
}

func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("heartbeat", r.Heartbeat)

	r.frontendRouter.RegisterRoutes(routerGroup)
}
