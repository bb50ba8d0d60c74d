package models

// Room is a single bookable room owned by the upstream API.
// A room belongs to exactly one RoomGroup via its Type string.
type Room struct {
	ID          string   `json:"id"` // empty for rooms not yet created upstream
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	DoorlockID  string   `json:"doorlockId"`
	Images      []string `json:"images"`
}

// RoomGroup is a named room type aggregating an ordered set of rooms.
// Group-level fields are edited as a unit in the detail panel.
type RoomGroup struct {
	Name         string   `json:"name"`
	Abbreviation string   `json:"abbreviation"`
	BasePrice    float64  `json:"basePrice"`
	Amenities    []string `json:"amenities"`
	MaxOccupancy int      `json:"maxOccupancy"`
	Rooms        []Room   `json:"rooms"`
}

// RoomError reports a per-room failure during a group save,
// e.g. a deletion blocked by active reservations
type RoomError struct {
	RoomName string `json:"roomName"`
	Message  string `json:"message"`
}
