package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/unicsmcr/hs_activities/config"
	"github.com/unicsmcr/hs_activities/controller"
	"github.com/unicsmcr/hs_activities/environment"
	"github.com/unicsmcr/hs_activities/eventloop"
	mock_frontend "github.com/unicsmcr/hs_activities/mocks/routers/frontend"
	mock_services "github.com/unicsmcr/hs_activities/mocks/services"
	"github.com/unicsmcr/hs_activities/routers"
	"github.com/unicsmcr/hs_activities/testutils"
	"github.com/unicsmcr/hs_activities/ui/page"
	"github.com/unicsmcr/hs_activities/utils"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, port string) *Server {
	ctrl := gomock.NewController(t)
	mockFrontendRouter := mock_frontend.NewMockRouter(ctrl)
	mockFrontendRouter.EXPECT().RegisterRoutes(testutils.RouterGroupMatcher{Path: "/"}).Times(1)
	mockAuth := mock_services.NewMockAuthService(ctrl)
	mockAuth.EXPECT().GetCurrentUser(gomock.Any()).Return("", nil).AnyTimes()
	mockActivities := mock_services.NewMockActivityService(ctrl)
	mockActivities.EXPECT().GetActivities(gomock.Any()).Return(nil, nil).AnyTimes()

	restore := testutils.SetEnvVars(map[string]string{environment.Port: port})
	env := environment.NewEnv(zap.NewNop())
	restore()

	cfg := config.DefaultAppConfig()
	loop := eventloop.New(zap.NewNop())
	ctrlr := controller.New(zap.NewNop(), &cfg, mockAuth, mockActivities, page.New(&cfg), loop, utils.NewScheduler())

	return NewServer(zap.NewNop(), env, routers.NewMainRouter(zap.NewNop(), mockFrontendRouter), loop, ctrlr)
}

func Test_NewServer__should_register_main_router(t *testing.T) {
	server := newTestServer(t, "9090")

	w := httptest.NewRecorder()
	server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/heartbeat", nil))

	assert.Equal(t, "9090", server.Port)
	assert.Equal(t, http.StatusOK, w.Code)
}

func Test_Start__should_stop_when_context_is_done(t *testing.T) {
	server := newTestServer(t, "0")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
