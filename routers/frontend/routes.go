package frontend

import (
	"bytes"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unicsmcr/hs_activities/routers/models"
	"github.com/unicsmcr/hs_activities/ui"
	"go.uber.org/zap"
)

func (r *frontendRouter) Page(ctx *gin.Context) {
	var buf bytes.Buffer
	var renderErr error
	err := r.loop.Do(ctx.Request.Context(), func() {
		renderErr = r.page.Render(&buf)
	})
	if err != nil {
		r.logger.Error("page could not be reached", zap.Error(err))
		models.AbortWithHostError(ctx, http.StatusServiceUnavailable, "page is not available")
		return
	}
	if renderErr != nil {
		r.logger.Error("could not render page", zap.Error(renderErr))
		models.AbortWithHostError(ctx, http.StatusInternalServerError, "something went wrong")
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (r *frontendRouter) UserIcon(ctx *gin.Context) {
	r.dispatch(ctx, ui.Event{Type: ui.UserIconClicked})
}

func (r *frontendRouter) OpenLogin(ctx *gin.Context) {
	r.dispatch(ctx, ui.Event{Type: ui.OpenLoginClicked})
}

func (r *frontendRouter) CloseModal(ctx *gin.Context) {
	modal, ok := modalParam(ctx)
	if !ok {
		return
	}
	r.dispatch(ctx, ui.Event{Type: ui.CloseClicked, Modal: modal})
}

func (r *frontendRouter) ModalBackground(ctx *gin.Context) {
	modal, ok := modalParam(ctx)
	if !ok {
		return
	}
	r.dispatch(ctx, ui.Event{Type: ui.BackgroundClicked, Modal: modal})
}

func (r *frontendRouter) Login(ctx *gin.Context) {
	username, password := ctx.PostForm("username"), ctx.PostForm("password")

	r.run(ctx, func() {
		r.page.FillLoginForm(username, password)
		r.page.Dispatch(ui.Event{Type: ui.LoginSubmitted})
	})
}

func (r *frontendRouter) Logout(ctx *gin.Context) {
	r.dispatch(ctx, ui.Event{Type: ui.LogoutClicked})
}

func (r *frontendRouter) SignUp(ctx *gin.Context) {
	email, activity := ctx.PostForm("email"), ctx.PostForm("activity")

	r.run(ctx, func() {
		r.page.FillSignupForm(email, activity)
		r.page.Dispatch(ui.Event{Type: ui.SignupSubmitted})
	})
}

func (r *frontendRouter) Unregister(ctx *gin.Context) {
	activity, email := ctx.PostForm("activity"), ctx.PostForm("email")

	clicked := false
	if !r.run(ctx, func() { clicked = r.page.ClickRemoval(activity, email) }) {
		return
	}
	if !clicked {
		r.logger.Warn("no removal control for participant", zap.String("activity", activity), zap.String("email", email))
	}
}

func (r *frontendRouter) dispatch(ctx *gin.Context, event ui.Event) {
	r.run(ctx, func() { r.page.Dispatch(event) })
}

// run executes fn on the loop, waits for the requests it started and
// redirects back to the page. It reports whether fn ran.
func (r *frontendRouter) run(ctx *gin.Context, fn func()) bool {
	if err := r.loop.Do(ctx.Request.Context(), fn); err != nil {
		r.logger.Error("page could not be reached", zap.Error(err))
		models.AbortWithHostError(ctx, http.StatusServiceUnavailable, "page is not available")
		return false
	}

	settleCtx, cancel := context.WithTimeout(ctx.Request.Context(), r.cfg.Timings.SettleTimeout)
	defer cancel()
	if err := r.loop.Settle(settleCtx); err != nil {
		r.logger.Warn("page did not settle in time", zap.Error(err))
	}

	ctx.Redirect(http.StatusSeeOther, "/")
	return true
}

func modalParam(ctx *gin.Context) (ui.Modal, bool) {
	modal := ui.Modal(ctx.Param("modal"))
	for _, known := range ui.Modals {
		if known == modal {
			return modal, true
		}
	}

	models.AbortWithHostError(ctx, http.StatusBadRequest, "unknown modal")
	return "", false
}
