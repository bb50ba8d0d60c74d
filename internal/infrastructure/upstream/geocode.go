package upstream

import (
	"context"
	"fmt"
	"net/http"

	"pms-app-service/internal/domain/models"
)

// GeocodeResult is the upstream geocode response
type GeocodeResult struct {
	Success   bool               `json:"success"`
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Accuracy  models.GeoAccuracy `json:"accuracy"`
}

// Geocode resolves a free-form address string to coordinates and an
// accuracy classification
func (c *Client) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	body := map[string]string{"address": address}

	var result GeocodeResult
	if err := c.do(ctx, http.MethodPost, "/api/geocode", nil, body, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("geocode did not resolve address %q", address)
	}
	return &result, nil
}
