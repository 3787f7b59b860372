package view

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/scrng/scoreboard-web/internal/gateway"
	"github.com/scrng/scoreboard-web/internal/model"
)

// RoomList holds the rooms visible to one user, plus the transient state of
// the room-creation dialog. Mutations follow refresh-after-write: the list
// is always re-fetched in full, never patched locally.
type RoomList struct {
	mu      sync.Mutex
	gateway Gateway
	logger  *slog.Logger

	userID model.UserID
	rooms  []model.Room

	dialogOpen bool
	createName string
	createErr  string
}

// NewRoomList creates a room list view for one user
func NewRoomList(g Gateway, userID model.UserID, logger *slog.Logger) *RoomList {
	return &RoomList{
		gateway: g,
		logger:  logger,
		userID:  userID,
	}
}

// ListState is a render snapshot of the room list
type ListState struct {
	Rooms      []model.Room
	DialogOpen bool
	CreateName string
	CreateErr  string
}

// State returns a snapshot safe to render from
func (l *RoomList) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()

	rooms := make([]model.Room, len(l.rooms))
	copy(rooms, l.rooms)

	return ListState{
		Rooms:      rooms,
		DialogOpen: l.dialogOpen,
		CreateName: l.createName,
		CreateErr:  l.createErr,
	}
}

// Load re-fetches the user's rooms. On failure the prior list is left
// unchanged: for the list view, last good state wins over a blank screen.
func (l *RoomList) Load(ctx context.Context) {
	rooms, err := l.gateway.ListRooms(ctx, l.userID)
	if err != nil {
		l.logger.Error("failed to load rooms",
			slog.String("user_id", string(l.userID)),
			slog.String("error", err.Error()),
		)
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.rooms = rooms
}

// OpenDialog opens the room-creation dialog
func (l *RoomList) OpenDialog() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dialogOpen = true
}

// CloseDialog closes the room-creation dialog and discards its state
func (l *RoomList) CloseDialog() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dialogOpen = false
	l.createName = ""
	l.createErr = ""
}

// Create creates a room. A name that trims to empty is rejected locally with
// no network call. On success the full list is re-fetched (the returned room
// is never appended speculatively) and the dialog closes; on failure the
// error is surfaced in the dialog, which stays open with the input intact.
func (l *RoomList) Create(ctx context.Context, name string) {
	name = strings.TrimSpace(name)

	l.mu.Lock()
	l.dialogOpen = true
	l.createName = name
	l.mu.Unlock()

	if name == "" {
		l.mu.Lock()
		l.createErr = "Room name is required"
		l.mu.Unlock()
		return
	}

	if _, err := l.gateway.CreateRoom(ctx, l.userID, name); err != nil {
		var apiErr *gateway.APIError
		msg := "Could not create room"
		if errors.As(err, &apiErr) {
			msg = apiErr.Message
		} else {
			l.logger.Error("create room request failed",
				slog.String("user_id", string(l.userID)),
				slog.String("error", err.Error()),
			)
		}
		l.mu.Lock()
		l.createErr = msg
		l.mu.Unlock()
		return
	}

	l.Load(ctx)
	l.CloseDialog()
}

// Delete deletes a room, ignoring the call's individual result, then
// unconditionally re-fetches the list. A failed delete is visible only as
// the room still being present after the refresh.
func (l *RoomList) Delete(ctx context.Context, roomID model.RoomID) {
	if err := l.gateway.DeleteRoom(ctx, roomID); err != nil {
		l.logger.Error("failed to delete room",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
	}
	l.Load(ctx)
}
