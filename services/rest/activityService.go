package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_activities/entities"
	"github.com/unicsmcr/hs_activities/services"
	"go.uber.org/zap"
)

type restActivityService struct {
	logger *zap.Logger
	client *Client
}

type messageResponse struct {
	Message string `json:"message"`
}

// NewRestActivityService creates a new ActivityService that talks to the backend over HTTP
func NewRestActivityService(logger *zap.Logger, client *Client) services.ActivityService {
	return &restActivityService{
		logger: logger,
		client: client,
	}
}

func (s *restActivityService) GetActivities(ctx context.Context) (entities.Activities, error) {
	var activities entities.Activities

	err := s.client.do(ctx, http.MethodGet, "/activities", nil, &activities)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch activities")
	}
	// a successful decode always yields a collection, nil means the body was null
	if activities == nil {
		return nil, errors.Wrap(services.ErrInvalidResponse, "activities response is null")
	}

	return activities, nil
}

func (s *restActivityService) SignUp(ctx context.Context, activity, email string) (string, error) {
	query := url.Values{}
	query.Set("email", email)

	var res messageResponse
	err := s.client.do(ctx, http.MethodPost, activityPath(activity, "signup"), query, &res)
	if err != nil {
		return "", errors.Wrapf(err, "could not sign up %s for %s", email, activity)
	}

	return res.Message, nil
}

func (s *restActivityService) Unregister(ctx context.Context, activity, email string) (string, error) {
	query := url.Values{}
	query.Set("email", email)

	var res messageResponse
	err := s.client.do(ctx, http.MethodDelete, activityPath(activity, "unregister"), query, &res)
	if err != nil {
		return "", errors.Wrapf(err, "could not unregister %s from %s", email, activity)
	}

	return res.Message, nil
}
