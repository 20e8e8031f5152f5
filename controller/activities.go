package controller

import (
	"context"

	"github.com/unicsmcr/hs_activities/entities"
	"github.com/unicsmcr/hs_activities/ui"
	"go.uber.org/zap"
)

// FetchActivities fetches every activity and re-renders the list and the
// activity options from scratch
func (c *Controller) FetchActivities() {
	c.loop.Go(func(ctx context.Context) func() {
		activities, err := c.activityService.GetActivities(ctx)
		return func() {
			if err != nil {
				c.logger.Error("could not fetch activities", zap.Error(err))
				c.view.RenderActivitiesError(c.cfg.Messages.ActivitiesError)
				return
			}

			c.renderActivities(activities)
		}
	})
}

func (c *Controller) renderActivities(activities entities.Activities) {
	cards := make([]ui.ActivityCard, 0, len(activities))
	for _, activity := range activities {
		cards = append(cards, ui.ActivityCard{
			Name:         activity.Name,
			Description:  activity.Description,
			Schedule:     activity.Schedule,
			SpotsLeft:    activity.SpotsLeft(),
			Participants: append([]string(nil), activity.Participants...),
		})
	}

	authenticated := c.session.IsAuthenticated()
	for _, control := range c.view.RenderActivities(cards) {
		control.Visible = authenticated
		control.OnClick(c.Unregister)
	}
	c.view.SetActivityOptions(activities.Names())

	c.logger.Debug("rendered activities", zap.Int("count", len(activities)))
}
