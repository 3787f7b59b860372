package view

import (
	"log/slog"
	"sync"

	"github.com/scrng/scoreboard-web/internal/model"
)

// Registry hands out per-user view-model instances, one RoomList and one
// RoomView per session user, so state like the last good room list and the
// sticky sort mode survives across requests. View state lives only in this
// process; nothing is cached or persisted beyond the session cookie.
type Registry struct {
	mu      sync.Mutex
	gateway Gateway
	logger  *slog.Logger
	lists   map[model.UserID]*RoomList
	rooms   map[model.UserID]*RoomView
}

// NewRegistry creates a view-model registry backed by the given gateway
func NewRegistry(g Gateway, logger *slog.Logger) *Registry {
	return &Registry{
		gateway: g,
		logger:  logger,
		lists:   make(map[model.UserID]*RoomList),
		rooms:   make(map[model.UserID]*RoomView),
	}
}

// RoomList returns the user's room list view, creating it on first use
func (r *Registry) RoomList(userID model.UserID) *RoomList {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, ok := r.lists[userID]
	if !ok {
		list = NewRoomList(r.gateway, userID, r.logger)
		r.lists[userID] = list
	}
	return list
}

// RoomView returns the user's room detail view, creating it on first use
func (r *Registry) RoomView(userID model.UserID) *RoomView {
	r.mu.Lock()
	defer r.mu.Unlock()

	rv, ok := r.rooms[userID]
	if !ok {
		rv = NewRoomView(r.gateway, r.logger)
		r.rooms[userID] = rv
	}
	return rv
}

// Drop discards a user's view state, e.g. on logout
func (r *Registry) Drop(userID model.UserID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.lists, userID)
	delete(r.rooms, userID)
}
