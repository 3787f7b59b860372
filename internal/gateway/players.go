package gateway

import (
	"context"
	"fmt"

	"github.com/scrng/scoreboard-web/internal/model"
)

type pointsDelta struct {
	Points int `json:"points"`
}

// AddPlayer adds a named player to a room
func (c *Client) AddPlayer(ctx context.Context, roomID model.RoomID, name string) error {
	req := map[string]string{"playerName": name}
	return c.Post(ctx, fmt.Sprintf("/rooms/%s/players", roomID), req, nil)
}

// RemovePlayer removes a player from a room
func (c *Client) RemovePlayer(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) error {
	return c.Delete(ctx, fmt.Sprintf("/rooms/%s/players/%s", roomID, playerID))
}

// AdjustPlayerPoints adjusts one player's points by a signed delta
func (c *Client) AdjustPlayerPoints(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, delta int) error {
	return c.Put(ctx, fmt.Sprintf("/rooms/%s/players/%s/points", roomID, playerID), pointsDelta{Points: delta}, nil)
}

// AdjustAllPoints adjusts every player's points in a room by a signed delta
func (c *Client) AdjustAllPoints(ctx context.Context, roomID model.RoomID, delta int) error {
	return c.Put(ctx, fmt.Sprintf("/rooms/%s/players/points", roomID), pointsDelta{Points: delta}, nil)
}
