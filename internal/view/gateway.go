package view

import (
	"context"

	"github.com/scrng/scoreboard-web/internal/model"
)

// Gateway is the slice of the API client the view models consume.
// Implemented by gateway.Client; faked in tests.
type Gateway interface {
	ListRooms(ctx context.Context, userID model.UserID) ([]model.Room, error)
	GetRoom(ctx context.Context, roomID model.RoomID) (*model.Room, error)
	CreateRoom(ctx context.Context, userID model.UserID, name string) (*model.Room, error)
	DeleteRoom(ctx context.Context, roomID model.RoomID) error
	AddPlayer(ctx context.Context, roomID model.RoomID, name string) error
	RemovePlayer(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) error
	AdjustPlayerPoints(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, delta int) error
	AdjustAllPoints(ctx context.Context, roomID model.RoomID, delta int) error
}
