package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HostError describes a page request the host could not serve
type HostError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

func (e *HostError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// AbortWithHostError answers the request with a HostError and aborts it.
// Clients asking for JSON get the error as JSON, browsers get plain text.
func AbortWithHostError(ctx *gin.Context, status int, message string) {
	hostErr := HostError{
		Status:  status,
		Message: message,
		Path:    ctx.Request.URL.Path,
	}

	switch ctx.NegotiateFormat(gin.MIMEPlain, gin.MIMEJSON) {
	case gin.MIMEJSON:
		ctx.JSON(status, hostErr)
	default:
		ctx.String(status, "%d %s: %s\n", status, http.StatusText(status), message)
	}
	ctx.Abort()
}
