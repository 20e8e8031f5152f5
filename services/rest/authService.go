package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_activities/services"
	"go.uber.org/zap"
)

type restAuthService struct {
	logger *zap.Logger
	client *Client
}

// NewRestAuthService creates a new AuthService that talks to the backend over HTTP
func NewRestAuthService(logger *zap.Logger, client *Client) services.AuthService {
	return &restAuthService{
		logger: logger,
		client: client,
	}
}

func (s *restAuthService) GetCurrentUser(ctx context.Context) (string, error) {
	var res struct {
		User *string `json:"user"`
	}

	err := s.client.do(ctx, http.MethodGet, "/current-user", nil, &res)
	if err != nil {
		return "", errors.Wrap(err, "could not fetch current user")
	}

	if res.User == nil {
		return "", nil
	}
	return *res.User, nil
}

func (s *restAuthService) Login(ctx context.Context, username, password string) (*services.LoginResult, error) {
	query := url.Values{}
	query.Set("username", username)
	query.Set("password", password)

	var res services.LoginResult
	err := s.client.do(ctx, http.MethodPost, "/login", query, &res)
	if err != nil {
		return nil, errors.Wrapf(err, "could not log in as %s", username)
	}

	return &res, nil
}

func (s *restAuthService) Logout(ctx context.Context) error {
	err := s.client.do(ctx, http.MethodPost, "/logout", nil, nil)
	if err != nil {
		return errors.Wrap(err, "could not log out")
	}

	return nil
}
