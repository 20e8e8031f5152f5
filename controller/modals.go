package controller

import "github.com/unicsmcr/hs_activities/ui"

// OpenUserMenu shows the user menu
func (c *Controller) OpenUserMenu() {
	c.view.ShowModal(ui.UserMenuModal)
}

// OpenLogin swaps the user menu for the login modal
func (c *Controller) OpenLogin() {
	c.view.HideModal(ui.UserMenuModal)
	c.view.ShowModal(ui.LoginModal)
}

// CloseModal hides modal. Other modals are left as they are.
func (c *Controller) CloseModal(modal ui.Modal) {
	c.view.HideModal(modal)
}
