package services

import (
	"context"

	"github.com/unicsmcr/hs_activities/entities"
)

// ActivityService is the service for interactions with the activities endpoints of the backend
type ActivityService interface {
	GetActivities(context.Context) (entities.Activities, error)
	// SignUp registers email for the activity and returns the backend's message
	SignUp(ctx context.Context, activity, email string) (string, error)
	// Unregister removes email from the activity and returns the backend's message
	Unregister(ctx context.Context, activity, email string) (string, error)
}
