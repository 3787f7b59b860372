package gateway

import (
	"context"
	"fmt"

	"github.com/scrng/scoreboard-web/internal/model"
)

// ListRooms fetches all rooms belonging to a user
func (c *Client) ListRooms(ctx context.Context, userID model.UserID) ([]model.Room, error) {
	var rooms []model.Room
	if err := c.Get(ctx, fmt.Sprintf("/userRooms/%s", userID), &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoom fetches a single room with its full player list
func (c *Client) GetRoom(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	var room model.Room
	if err := c.Get(ctx, fmt.Sprintf("/rooms/%s", roomID), &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a room owned by the given user
func (c *Client) CreateRoom(ctx context.Context, userID model.UserID, name string) (*model.Room, error) {
	req := map[string]string{"name": name}
	var room model.Room
	if err := c.Post(ctx, fmt.Sprintf("/rooms/%s", userID), req, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom deletes a room by id
func (c *Client) DeleteRoom(ctx context.Context, roomID model.RoomID) error {
	return c.Delete(ctx, fmt.Sprintf("/rooms/%s", roomID))
}
