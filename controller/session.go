package controller

import (
	"context"
	"fmt"

	"github.com/unicsmcr/hs_activities/services"
	"github.com/unicsmcr/hs_activities/ui"
	"go.uber.org/zap"
)

// CheckSession asks the backend who is logged in and refreshes the page.
// Failures are logged and leave the session as it was.
func (c *Controller) CheckSession() {
	c.loop.Go(func(ctx context.Context) func() {
		user, err := c.authService.GetCurrentUser(ctx)
		return func() {
			if err != nil {
				c.logger.Error("could not check current user", zap.Error(err))
				return
			}

			c.session.SetUser(user)
			c.refreshAuth()
		}
	})
}

// Login submits the login form
func (c *Controller) Login() {
	form := c.view.LoginForm()
	if err := c.validate.Struct(form); err != nil {
		c.logger.Debug("login form is invalid", zap.Error(err))
		c.view.ShowMessage(ui.LoginMessage, c.cfg.Messages.InvalidLoginForm, ui.SeverityError)
		return
	}

	c.loop.Go(func(ctx context.Context) func() {
		res, err := c.authService.Login(ctx, form.Username, form.Password)
		return func() {
			c.handleLogin(res, err)
		}
	})
}

func (c *Controller) handleLogin(res *services.LoginResult, err error) {
	if err != nil {
		if apiErr, ok := services.AsAPIError(err); ok {
			c.logger.Info("login was rejected", zap.Int("status", apiErr.Status))
			c.view.ShowMessage(ui.LoginMessage, apiErr.DetailOr(c.cfg.Messages.LoginFailed), ui.SeverityError)
			return
		}

		c.logger.Error("could not log in", zap.Error(err))
		c.view.ShowMessage(ui.LoginMessage, c.cfg.Messages.LoginError, ui.SeverityError)
		return
	}

	c.session.SetUser(res.Username)
	c.view.ShowMessage(ui.LoginMessage, res.Message, ui.SeveritySuccess)
	c.view.ResetLoginForm()

	c.after(c.cfg.Timings.LoginMessageDismiss, func() {
		c.view.HideModal(ui.LoginModal)
		c.view.HideMessage(ui.LoginMessage)
	})

	c.refreshAuth()
}

// Logout ends the session. A failed logout leaves the page unchanged.
func (c *Controller) Logout() {
	c.loop.Go(func(ctx context.Context) func() {
		err := c.authService.Logout(ctx)
		return func() {
			if err != nil {
				c.logger.Warn("could not log out", zap.Error(err))
				return
			}

			c.session.Clear()
			c.view.HideModal(ui.UserMenuModal)
			c.refreshAuth()
		}
	})
}

// User returns the current user and whether one is logged in
func (c *Controller) User() (string, bool) {
	return c.session.User()
}

func (c *Controller) refreshAuth() {
	user, authenticated := c.session.User()
	if authenticated {
		c.view.SetUserDisplay(fmt.Sprintf(c.cfg.Messages.LoggedInAs, user))
	} else {
		c.view.SetUserDisplay(c.cfg.Messages.NotLoggedIn)
	}

	c.view.SetAuthControls(authenticated)
	c.view.SetSignupVisible(authenticated)
	c.refreshRemovalControls()
}

func (c *Controller) refreshRemovalControls() {
	authenticated := c.session.IsAuthenticated()
	for _, control := range c.view.RemovalControls() {
		control.Visible = authenticated
	}
}
