package models

import "time"

// GeoAccuracy classifies how precisely an address resolved to coordinates
type GeoAccuracy string

const (
	AccuracyExact       GeoAccuracy = "exact"
	AccuracyApproximate GeoAccuracy = "approximate"
)

// ZoomLevel returns the map zoom matching the accuracy classification
func (a GeoAccuracy) ZoomLevel() int {
	if a == AccuracyExact {
		return 16
	}
	return 12
}

// GeoPosition holds map coordinates for a property
type GeoPosition struct {
	Latitude             float64     `json:"latitude"`
	Longitude            float64     `json:"longitude"`
	IsManuallyPositioned bool        `json:"isManuallyPositioned"` // sticky: suppresses address-based geocoding until reset
	Accuracy             GeoAccuracy `json:"accuracy"`
}

// Property is the canonical property record owned by the upstream API.
// Address components supersede the legacy single address string.
type Property struct {
	ID             string      `json:"id"`
	OrganizationID string      `json:"organizationId"`
	Name           string      `json:"name"`
	Suite          string      `json:"suite"`
	Street         string      `json:"street"`
	City           string      `json:"city"`
	State          string      `json:"state"`
	ZipCode        string      `json:"zipCode"`
	Country        string      `json:"country"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email"`
	Website        string      `json:"website"`
	Position       GeoPosition `json:"position"`
	Timezone       string      `json:"timezone"`
	Currency       string      `json:"currency"`
	IsActive       bool        `json:"isActive"`
	IsDefault      bool        `json:"isDefault"`
	Photos         []string    `json:"photos"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// AddressFields are the sub-fields watched by the geocoding side-effect
type AddressFields struct {
	Suite   string `json:"suite"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Joined concatenates the non-empty address parts in display order
func (a AddressFields) Joined() string {
	parts := []string{a.Suite, a.Street, a.City, a.State, a.Country}
	joined := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if joined != "" {
			joined += ", "
		}
		joined += p
	}
	return joined
}

// GeneralSettings is the canonical general-settings form record.
// One field set is authoritative: the Property component set, including
// isManuallyPositioned, without a shortName.
type GeneralSettings struct {
	PropertyID string      `json:"propertyId,omitempty"`
	Name       string      `json:"name"`
	Suite      string      `json:"suite"`
	Street     string      `json:"street"`
	City       string      `json:"city"`
	State      string      `json:"state"`
	ZipCode    string      `json:"zipCode"`
	Country    string      `json:"country"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	Website    string      `json:"website"`
	Position   GeoPosition `json:"position"`
	Timezone   string      `json:"timezone"`
	Currency   string      `json:"currency"`
	Photos     []string    `json:"photos,omitempty"`
}

// DefaultGeneralSettings returns the empty record used before any remote
// settings exist and in new-property mode
func DefaultGeneralSettings() *GeneralSettings {
	return &GeneralSettings{
		Timezone: "UTC",
		Currency: "USD",
		Position: GeoPosition{Accuracy: AccuracyApproximate},
	}
}
