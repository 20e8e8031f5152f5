package frontend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unicsmcr/hs_activities/routers/models"
	"github.com/unicsmcr/hs_activities/testutils"
	"github.com/unicsmcr/hs_activities/ui"
)

func Test_Page__should_render_page(t *testing.T) {
	setup := setupTest(t)

	w := setup.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "Loading activities...")
	assert.Contains(t, w.Body.String(), "Not Logged In")
}

func Test_Events__should_dispatch_and_redirect(t *testing.T) {
	tests := []struct {
		name  string
		route string
		want  ui.Event
	}{
		{name: "user icon", route: "/ui/user-icon", want: ui.Event{Type: ui.UserIconClicked}},
		{name: "open login", route: "/ui/open-login", want: ui.Event{Type: ui.OpenLoginClicked}},
		{name: "logout", route: "/ui/logout", want: ui.Event{Type: ui.LogoutClicked}},
		{name: "close", route: "/ui/modals/user-menu-modal/close", want: ui.Event{Type: ui.CloseClicked, Modal: ui.UserMenuModal}},
		{name: "background", route: "/ui/modals/login-modal/background", want: ui.Event{Type: ui.BackgroundClicked, Modal: ui.LoginModal}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)

			w := setup.serve(httptest.NewRequest(http.MethodPost, tt.route, nil))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/", w.Header().Get("Location"))
			assert.Equal(t, []ui.Event{tt.want}, setup.recorded(t))
		})
	}
}

func Test_ModalRoutes__should_reject_unknown_modal(t *testing.T) {
	setup := setupTest(t)
	req := httptest.NewRequest(http.MethodPost, "/ui/modals/settings/close", nil)
	req.Header.Set("Accept", "application/json")

	w := setup.serve(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var res models.HostError
	require.NoError(t, testutils.UnmarshallResponse(w.Body, &res))
	assert.Equal(t, models.HostError{Status: http.StatusBadRequest, Message: "unknown modal", Path: "/ui/modals/settings/close"}, res)
	assert.Empty(t, setup.recorded(t))
}

func Test_Login__should_fill_form_before_submit(t *testing.T) {
	setup := setupTest(t)
	var submitted ui.LoginForm
	setup.page.On(ui.LoginSubmitted, func(ui.Event) { submitted = setup.page.LoginForm() })

	w := setup.serve(testutils.NewFormRequest(http.MethodPost, "/ui/login", map[string]string{
		"username": "john",
		"password": "secret",
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	setup.recorded(t)
	assert.Equal(t, ui.LoginForm{Username: "john", Password: "secret"}, submitted)
}

func Test_SignUp__should_fill_form_before_submit(t *testing.T) {
	setup := setupTest(t)
	var submitted ui.SignupForm
	setup.page.On(ui.SignupSubmitted, func(ui.Event) { submitted = setup.page.SignupForm() })

	w := setup.serve(testutils.NewFormRequest(http.MethodPost, "/ui/signup", map[string]string{
		"email":    "alice@example.com",
		"activity": "Chess Club",
	}))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	setup.recorded(t)
	assert.Equal(t, ui.SignupForm{Email: "alice@example.com", Activity: "Chess Club"}, submitted)
}

func Test_Unregister__should_click_matching_control(t *testing.T) {
	setup := setupTest(t)
	var clicked []string
	require.NoError(t, setup.loop.Do(context.Background(), func() {
		controls := setup.page.RenderActivities([]ui.ActivityCard{{Name: "Chess Club", Participants: []string{"a@x.com"}}})
		for _, control := range controls {
			control.Visible = true
			control.OnClick(func(control *ui.RemovalControl) {
				clicked = append(clicked, control.Activity+"/"+control.Email)
			})
		}
	}))

	w := setup.serve(testutils.NewFormRequest(http.MethodPost, "/ui/unregister", map[string]string{
		"activity": "Chess Club",
		"email":    "a@x.com",
	}))
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = setup.serve(testutils.NewFormRequest(http.MethodPost, "/ui/unregister", map[string]string{
		"activity": "Chess Club",
		"email":    "b@x.com",
	}))
	assert.Equal(t, http.StatusSeeOther, w.Code)

	setup.recorded(t)
	assert.Equal(t, []string{"Chess Club/a@x.com"}, clicked)
}

func Test_Events__should_wait_for_started_requests(t *testing.T) {
	setup := setupTest(t)
	finished := false
	setup.page.On(ui.LogoutClicked, func(ui.Event) {
		setup.loop.Go(func(ctx context.Context) func() {
			time.Sleep(50 * time.Millisecond)
			return func() { finished = true }
		})
	})

	w := setup.serve(httptest.NewRequest(http.MethodPost, "/ui/logout", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	var done bool
	require.NoError(t, setup.loop.Do(context.Background(), func() { done = finished }))
	assert.True(t, done)
}
