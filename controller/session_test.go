package controller

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_activities/services"
	"github.com/unicsmcr/hs_activities/ui"
	"github.com/unicsmcr/hs_activities/ui/page"
)

func (s *testSetup) openLoginAndSubmit(username, password string) {
	s.dispatch(ui.Event{Type: ui.UserIconClicked})
	s.dispatch(ui.Event{Type: ui.OpenLoginClicked})
	s.do(func() {
		s.page.FillLoginForm(username, password)
		s.page.Dispatch(ui.Event{Type: ui.LoginSubmitted})
	})
}

func Test_CheckSession__should_keep_state_on_failure(t *testing.T) {
	setup := setupTest(t)
	setup.start("john", testActivities())

	setup.mockAuth.EXPECT().GetCurrentUser(gomock.Any()).Return("", errors.New("connection refused")).Times(1)
	setup.do(setup.controller.CheckSession)

	assert.Equal(t, "Logged in as: john", setup.page.UserDisplay())
	assert.Equal(t, 3, setup.visibleControls())
}

func Test_CheckSession__should_log_out_when_backend_reports_no_user(t *testing.T) {
	setup := setupTest(t)
	setup.start("john", testActivities())

	setup.mockAuth.EXPECT().GetCurrentUser(gomock.Any()).Return("", nil).Times(1)
	setup.do(setup.controller.CheckSession)

	assert.Equal(t, "Not Logged In", setup.page.UserDisplay())
	assert.Equal(t, 0, setup.visibleControls())
	assert.False(t, setup.page.SignupVisible())
}

func Test_Login__should_authenticate_and_dismiss_after_delay(t *testing.T) {
	setup := setupTest(t)
	setup.start("", testActivities())

	setup.mockAuth.EXPECT().Login(gomock.Any(), "john", "secret").
		Return(&services.LoginResult{Username: "john", Message: "Welcome, john!"}, nil).Times(1)
	setup.openLoginAndSubmit("john", "secret")

	assert.Equal(t, page.Message{Text: "Welcome, john!", Severity: ui.SeveritySuccess, Visible: true}, setup.page.Message(ui.LoginMessage))
	assert.Equal(t, ui.LoginForm{}, setup.page.LoginForm())
	assert.Equal(t, "Logged in as: john", setup.page.UserDisplay())
	assert.True(t, setup.page.SignupVisible())
	assert.Equal(t, 3, setup.visibleControls())
	assert.True(t, setup.page.ModalVisible(ui.LoginModal))

	user, ok := "", false
	setup.do(func() { user, ok = setup.controller.User() })
	assert.True(t, ok)
	assert.Equal(t, "john", user)

	setup.advance(setup.cfg.Timings.LoginMessageDismiss - 1)
	assert.True(t, setup.page.Message(ui.LoginMessage).Visible)
	assert.True(t, setup.page.ModalVisible(ui.LoginModal))

	setup.advance(1)
	assert.False(t, setup.page.Message(ui.LoginMessage).Visible)
	assert.False(t, setup.page.ModalVisible(ui.LoginModal))
}

func Test_Login__should_show_detail_for_invalid_credentials(t *testing.T) {
	setup := setupTest(t)
	setup.start("", testActivities())

	setup.mockAuth.EXPECT().Login(gomock.Any(), "john", "wrong").
		Return(nil, &services.APIError{Status: http.StatusUnauthorized, Detail: "Invalid credentials"}).Times(1)
	setup.openLoginAndSubmit("john", "wrong")

	assert.Equal(t, page.Message{Text: "Invalid credentials", Severity: ui.SeverityError, Visible: true}, setup.page.Message(ui.LoginMessage))
	assert.True(t, setup.page.ModalVisible(ui.LoginModal))
	assert.Equal(t, "Not Logged In", setup.page.UserDisplay())
	assert.Equal(t, 0, setup.visibleControls())
	assert.Equal(t, 0, setup.scheduler.Pending())
}

func Test_Login__should_show_fallbacks(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "api error without detail",
			err:  errors.Wrap(&services.APIError{Status: http.StatusInternalServerError}, "could not log in"),
			want: "Login failed",
		},
		{
			name: "transport failure",
			err:  errors.New("connection refused"),
			want: "Login error. Please try again.",
		},
		{
			name: "undecodable response",
			err:  errors.Wrap(services.ErrInvalidResponse, "not json"),
			want: "Login error. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)

			setup.mockAuth.EXPECT().Login(gomock.Any(), "john", "secret").Return(nil, tt.err).Times(1)
			setup.openLoginAndSubmit("john", "secret")

			assert.Equal(t, page.Message{Text: tt.want, Severity: ui.SeverityError, Visible: true}, setup.page.Message(ui.LoginMessage))
			assert.True(t, setup.page.ModalVisible(ui.LoginModal))
		})
	}
}

func Test_Login__should_not_send_incomplete_form(t *testing.T) {
	setup := setupTest(t)

	setup.openLoginAndSubmit("john", "")

	assert.Equal(t, setup.cfg.Messages.InvalidLoginForm, setup.page.Message(ui.LoginMessage).Text)
	assert.Equal(t, ui.LoginForm{Username: "john"}, setup.page.LoginForm())
}

func Test_Logout__should_clear_session(t *testing.T) {
	setup := setupTest(t)
	setup.start("john", testActivities())
	setup.dispatch(ui.Event{Type: ui.UserIconClicked})

	setup.mockAuth.EXPECT().Logout(gomock.Any()).Return(nil).Times(1)
	setup.dispatch(ui.Event{Type: ui.LogoutClicked})

	assert.Equal(t, "Not Logged In", setup.page.UserDisplay())
	assert.False(t, setup.page.ModalVisible(ui.UserMenuModal))
	assert.True(t, setup.page.LoginTriggerVisible())
	assert.False(t, setup.page.SignupVisible())
	assert.Equal(t, 0, setup.visibleControls())
}

func Test_Logout__should_keep_state_on_failure(t *testing.T) {
	setup := setupTest(t)
	setup.start("john", testActivities())
	setup.dispatch(ui.Event{Type: ui.UserIconClicked})

	setup.mockAuth.EXPECT().Logout(gomock.Any()).Return(&services.APIError{Status: http.StatusInternalServerError}).Times(1)
	setup.dispatch(ui.Event{Type: ui.LogoutClicked})

	assert.Equal(t, "Logged in as: john", setup.page.UserDisplay())
	assert.True(t, setup.page.ModalVisible(ui.UserMenuModal))
	assert.True(t, setup.page.LogoutVisible())
	assert.Equal(t, 3, setup.visibleControls())
	assert.False(t, setup.page.Message(ui.StatusMessage).Visible)
}
