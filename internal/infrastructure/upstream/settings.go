package upstream

import (
	"context"
	"net/http"
	"net/url"

	"pms-app-service/internal/domain/models"
)

// GetGeneralSettings fetches the canonical general settings for an
// organization scope. A 404 means "not configured yet" and surfaces as
// ErrNotFound for the caller to map to defaults.
func (c *Client) GetGeneralSettings(ctx context.Context, orgID, propertyID string) (*models.GeneralSettings, error) {
	query := url.Values{}
	if orgID != "" {
		query.Set("orgId", orgID)
	}
	if propertyID != "" {
		query.Set("propertyId", propertyID)
	}

	var settings models.GeneralSettings
	if err := c.do(ctx, http.MethodGet, "/api/settings/general", query, nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveGeneralSettings persists the general settings record
func (c *Client) SaveGeneralSettings(ctx context.Context, orgID string, settings *models.GeneralSettings) (*models.GeneralSettings, error) {
	query := url.Values{}
	if orgID != "" {
		query.Set("orgId", orgID)
	}

	var saved models.GeneralSettings
	if err := c.do(ctx, http.MethodPost, "/api/settings/general", query, settings, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
