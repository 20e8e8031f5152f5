package controller

import (
	"context"

	"github.com/unicsmcr/hs_activities/services"
	"github.com/unicsmcr/hs_activities/ui"
	"go.uber.org/zap"
)

// SignUp submits the sign-up form. Every submit sends its own request.
func (c *Controller) SignUp() {
	form := c.view.SignupForm()
	if err := c.validate.Struct(form); err != nil {
		c.logger.Debug("sign-up form is invalid", zap.Error(err))
		c.view.ShowMessage(ui.StatusMessage, c.cfg.Messages.InvalidSignup, ui.SeverityError)
		return
	}

	c.loop.Go(func(ctx context.Context) func() {
		message, err := c.activityService.SignUp(ctx, form.Activity, form.Email)
		return func() {
			c.handleRegistration(message, err, c.cfg.Messages.SignupError, c.view.ResetSignupForm)
		}
	})
}

// Unregister removes the participant of the clicked removal control
func (c *Controller) Unregister(control *ui.RemovalControl) {
	activity, email := control.Activity, control.Email

	c.loop.Go(func(ctx context.Context) func() {
		message, err := c.activityService.Unregister(ctx, activity, email)
		return func() {
			c.handleRegistration(message, err, c.cfg.Messages.UnregisterError, nil)
		}
	})
}

// handleRegistration shows the outcome of a sign-up or unregister request.
// Responses from the backend, successful or not, are hidden after the status
// delay; transport failures stay until replaced.
func (c *Controller) handleRegistration(message string, err error, transportFailure string, onSuccess func()) {
	if err != nil {
		apiErr, ok := services.AsAPIError(err)
		if !ok {
			c.logger.Error("registration request failed", zap.Error(err))
			c.view.ShowMessage(ui.StatusMessage, transportFailure, ui.SeverityError)
			return
		}

		c.logger.Info("registration was rejected", zap.Int("status", apiErr.Status), zap.String("detail", apiErr.Detail))
		c.view.ShowMessage(ui.StatusMessage, apiErr.DetailOr(c.cfg.Messages.RequestFailed), ui.SeverityError)
	} else {
		c.view.ShowMessage(ui.StatusMessage, message, ui.SeveritySuccess)
		if onSuccess != nil {
			onSuccess()
		}
		c.FetchActivities()
	}

	c.after(c.cfg.Timings.StatusMessageDismiss, func() {
		c.view.HideMessage(ui.StatusMessage)
	})
}
