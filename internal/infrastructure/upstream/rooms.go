package upstream

import (
	"context"
	"net/http"
	"net/url"

	"pms-app-service/internal/domain/models"
)

// GetRoomGroupByName fetches a room type and its rooms by group name
func (c *Client) GetRoomGroupByName(ctx context.Context, name string) (*models.RoomGroup, error) {
	query := url.Values{"name": {name}}
	var group models.RoomGroup
	if err := c.do(ctx, http.MethodGet, "/api/room-types/by-name", query, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// SaveRoomGroupByName persists the group-level fields (abbreviation,
// pricing, amenities, occupancy limits) as a unit
func (c *Client) SaveRoomGroupByName(ctx context.Context, group *models.RoomGroup) (*models.RoomGroup, error) {
	query := url.Values{"name": {group.Name}}
	var saved models.RoomGroup
	if err := c.do(ctx, http.MethodPost, "/api/room-types/by-name", query, group, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

// BulkUpdateRooms updates a batch of existing rooms in one call and
// returns the canonical records
func (c *Client) BulkUpdateRooms(ctx context.Context, rooms []models.Room) ([]models.Room, error) {
	var updated []models.Room
	if err := c.do(ctx, http.MethodPut, "/api/rooms/bulk-update", nil, rooms, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// CreateRoom creates one room and returns the canonical record
func (c *Client) CreateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	var created models.Room
	if err := c.do(ctx, http.MethodPost, "/api/rooms", nil, room, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteRoom deletes one room. A reservation conflict surfaces as a
// ConflictError carrying the server-provided message.
func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/rooms/"+id, nil, nil, nil)
}
