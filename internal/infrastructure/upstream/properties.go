package upstream

import (
	"context"
	"net/http"

	"pms-app-service/internal/domain/models"
)

// GetProperty fetches one property by id
func (c *Client) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodGet, "/api/properties/"+id, nil, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// CreateProperty creates a property and returns the canonical record
func (c *Client) CreateProperty(ctx context.Context, property *models.Property) (*models.Property, error) {
	var created models.Property
	if err := c.do(ctx, http.MethodPost, "/api/properties", nil, property, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProperty replaces a property and returns the canonical record
func (c *Client) UpdateProperty(ctx context.Context, id string, property *models.Property) (*models.Property, error) {
	var updated models.Property
	if err := c.do(ctx, http.MethodPut, "/api/properties/"+id, nil, property, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
