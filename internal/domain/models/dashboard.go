package models

import (
	"encoding/json"
	"time"
)

// ActivityType selects the activity feed tab
type ActivityType string

const (
	ActivitySales         ActivityType = "sales"
	ActivityCancellations ActivityType = "cancellations"
	ActivityOverbookings  ActivityType = "overbookings"
)

// Valid reports whether the activity type is a known tab
func (t ActivityType) Valid() bool {
	switch t {
	case ActivitySales, ActivityCancellations, ActivityOverbookings:
		return true
	}
	return false
}

// DashboardSnapshot aggregates the dashboard data for one property.
// Stats, reservations and activities are produced entirely upstream and
// passed through as opaque documents.
type DashboardSnapshot struct {
	Property *Property `json:"property"`

	Stats                json.RawMessage `json:"stats"`
	TodayReservations    json.RawMessage `json:"todayReservations,omitempty"`
	TomorrowReservations json.RawMessage `json:"tomorrowReservations,omitempty"`
	Activities           json.RawMessage `json:"activities,omitempty"`
	ActivityTab          ActivityType    `json:"activityTab,omitempty"`

	RefreshedAt time.Time `json:"refreshedAt"`
}
