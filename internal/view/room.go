package view

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/scrng/scoreboard-web/internal/gateway"
	"github.com/scrng/scoreboard-web/internal/model"
)

// SortMode selects the presentation order of a room's players
type SortMode string

const (
	// SortPoints orders players by points, descending. Ties keep the
	// fetched order (stable sort).
	SortPoints SortMode = "points"
	// SortName orders players by name using locale-aware collation
	SortName SortMode = "name"
)

// ParseSortMode normalizes a raw sort selection, defaulting to SortPoints
func ParseSortMode(raw string) SortMode {
	if raw == string(SortName) {
		return SortName
	}
	return SortPoints
}

// RoomView holds the currently displayed room for one user. The held room is
// a snapshot, only as fresh as the last fetch; every mutation re-fetches the
// whole room rather than trusting the mutation's own response or computing
// new state locally.
type RoomView struct {
	mu      sync.Mutex
	gateway Gateway
	logger  *slog.Logger

	roomID  model.RoomID
	room    *model.Room
	loading bool
	loadErr string

	playerDelta int
	roomDelta   int
	sortMode    SortMode
}

// NewRoomView creates a room detail view for one user
func NewRoomView(g Gateway, logger *slog.Logger) *RoomView {
	return &RoomView{
		gateway:     g,
		logger:      logger,
		playerDelta: DefaultDelta,
		roomDelta:   DefaultDelta,
		sortMode:    SortPoints,
	}
}

// RoomState is a render snapshot of the room view. Players carries the
// sorted projection; Room.Players keeps the fetched order.
type RoomState struct {
	Room        *model.Room
	Players     []model.Player
	Loading     bool
	Err         string
	PlayerDelta int
	RoomDelta   int
	Sort        SortMode
}

// State returns a snapshot safe to render from
func (v *RoomView) State() RoomState {
	v.mu.Lock()
	defer v.mu.Unlock()

	st := RoomState{
		Loading:     v.loading,
		Err:         v.loadErr,
		PlayerDelta: v.playerDelta,
		RoomDelta:   v.roomDelta,
		Sort:        v.sortMode,
	}
	if v.room != nil {
		room := *v.room
		room.Players = append([]model.Player(nil), v.room.Players...)
		st.Room = &room
		st.Players = sortPlayers(v.room.Players, v.sortMode)
	}
	return st
}

// RoomID returns the id of the room currently held, if any
func (v *RoomView) RoomID() model.RoomID {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.roomID
}

// Load fetches the room. Unlike the list view, a detail load failure blanks
// the room and shows an explicit error: stale or partial room state is worse
// than no room at all.
func (v *RoomView) Load(ctx context.Context, roomID model.RoomID) {
	v.mu.Lock()
	v.roomID = roomID
	v.loading = true
	v.loadErr = ""
	v.mu.Unlock()

	room, err := v.gateway.GetRoom(ctx, roomID)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		v.room = nil
		v.loadErr = errorMessage(err)
		v.logger.Error("failed to load room",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
		return
	}
	v.room = room
}

// AdjustPlayerPoints sends the current per-player delta for one player,
// negated when sign is negative, then re-fetches the room. The mutation's
// own outcome is ignored; the refresh is the only source of truth.
func (v *RoomView) AdjustPlayerPoints(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, sign int) {
	v.mu.Lock()
	v.roomID = roomID
	delta := v.playerDelta
	v.mu.Unlock()

	if sign < 0 {
		delta = -delta
	}

	if err := v.gateway.AdjustPlayerPoints(ctx, roomID, playerID, delta); err != nil {
		v.logger.Error("failed to adjust player points",
			slog.String("room_id", string(roomID)),
			slog.String("player_id", string(playerID)),
			slog.Int("delta", delta),
			slog.String("error", err.Error()),
		)
	}
	v.refresh(ctx)
}

// AdjustAllPoints sends the current room-wide delta for every player,
// negated when sign is negative, then re-fetches the room
func (v *RoomView) AdjustAllPoints(ctx context.Context, roomID model.RoomID, sign int) {
	v.mu.Lock()
	v.roomID = roomID
	delta := v.roomDelta
	v.mu.Unlock()

	if sign < 0 {
		delta = -delta
	}

	if err := v.gateway.AdjustAllPoints(ctx, roomID, delta); err != nil {
		v.logger.Error("failed to adjust room points",
			slog.String("room_id", string(roomID)),
			slog.Int("delta", delta),
			slog.String("error", err.Error()),
		)
	}
	v.refresh(ctx)
}

// AddPlayer adds a named player to the room then re-fetches it. A name that
// trims to empty is rejected locally with no network call.
func (v *RoomView) AddPlayer(ctx context.Context, roomID model.RoomID, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	v.mu.Lock()
	v.roomID = roomID
	v.mu.Unlock()

	if err := v.gateway.AddPlayer(ctx, roomID, name); err != nil {
		v.logger.Error("failed to add player",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
	}
	v.refresh(ctx)
}

// RemovePlayer removes a player from the room then re-fetches it
func (v *RoomView) RemovePlayer(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) {
	v.mu.Lock()
	v.roomID = roomID
	v.mu.Unlock()

	if err := v.gateway.RemovePlayer(ctx, roomID, playerID); err != nil {
		v.logger.Error("failed to remove player",
			slog.String("room_id", string(roomID)),
			slog.String("player_id", string(playerID)),
			slog.String("error", err.Error()),
		)
	}
	v.refresh(ctx)
}

// SetPlayerDelta records the per-player delta input, clamped on every edit
func (v *RoomView) SetPlayerDelta(raw string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.playerDelta = ParseDelta(raw)
}

// SetRoomDelta records the room-wide delta input, clamped on every edit
func (v *RoomView) SetRoomDelta(raw string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.roomDelta = ParseDelta(raw)
}

// SetSort switches the presentation sort mode. The stored player order is
// untouched, so switching modes back and forth is lossless.
func (v *RoomView) SetSort(mode SortMode) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sortMode = mode
}

// refresh re-fetches the whole room after a mutation. On failure the room is
// blanked with an explicit error, never left as a half-true snapshot.
func (v *RoomView) refresh(ctx context.Context) {
	v.mu.Lock()
	roomID := v.roomID
	v.mu.Unlock()

	room, err := v.gateway.GetRoom(ctx, roomID)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.room = nil
		v.loadErr = errorMessage(err)
		v.logger.Error("failed to refresh room",
			slog.String("room_id", string(roomID)),
			slog.String("error", err.Error()),
		)
		return
	}
	v.room = room
	v.loadErr = ""
}

// sortPlayers returns a sorted shallow copy; the input is never reordered
func sortPlayers(players []model.Player, mode SortMode) []model.Player {
	sorted := append([]model.Player(nil), players...)
	switch mode {
	case SortName:
		c := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Points > sorted[j].Points
		})
	}
	return sorted
}

// errorMessage extracts the user-facing message for a gateway failure
func errorMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
