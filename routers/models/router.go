package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router registers its routes on a gin router group
type Router interface {
	RegisterRoutes(*gin.RouterGroup)
	Heartbeat(*gin.Context)
}

// BaseRouter provides the handlers shared by every router
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Heartbeat reports that the host is up
func (r *BaseRouter) Heartbeat(c *gin.Context) {
	message := fmt.Sprintf("request to %s received", c.Request.URL.String())

	c.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
