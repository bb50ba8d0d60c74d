package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"pms-app-service/internal/domain/models"
)

// GetDashboardStats fetches the summary stats document for a property.
// The shape is produced entirely upstream and passed through opaquely.
func (c *Client) GetDashboardStats(ctx context.Context, propertyID string) (json.RawMessage, error) {
	query := url.Values{"propertyId": {propertyID}}
	var stats json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", query, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetDashboardReservations fetches the reservation list for a property and
// day selector ("today" or "tomorrow")
func (c *Client) GetDashboardReservations(ctx context.Context, propertyID, day string) (json.RawMessage, error) {
	query := url.Values{"propertyId": {propertyID}, "day": {day}}
	var reservations json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/reservations", query, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetDashboardActivities fetches the activity feed for one tab
func (c *Client) GetDashboardActivities(ctx context.Context, propertyID string, activityType models.ActivityType) (json.RawMessage, error) {
	query := url.Values{"propertyId": {propertyID}, "type": {string(activityType)}}
	var activities json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/dashboard/activities", query, nil, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
