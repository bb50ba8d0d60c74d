package upstream

import (
	"context"
	"net/http"
	"net/url"
)

// LocationOption is one entry of a dependent lookup list
type LocationOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ListCountries fetches the country lookup list
func (c *Client) ListCountries(ctx context.Context) ([]LocationOption, error) {
	var options []LocationOption
	if err := c.do(ctx, http.MethodGet, "/api/location/countries", nil, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// ListStates fetches the states of one country
func (c *Client) ListStates(ctx context.Context, countryCode string) ([]LocationOption, error) {
	query := url.Values{"countryCode": {countryCode}}
	var options []LocationOption
	if err := c.do(ctx, http.MethodGet, "/api/location/states", query, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// ListCities fetches the cities of one state
func (c *Client) ListCities(ctx context.Context, stateCode string) ([]LocationOption, error) {
	query := url.Values{"stateCode": {stateCode}}
	var options []LocationOption
	if err := c.do(ctx, http.MethodGet, "/api/location/cities", query, nil, &options); err != nil {
		return nil, err
	}
	return options, nil
}
