package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scrng/scoreboard-web/internal/model"
	"github.com/scrng/scoreboard-web/internal/view"
	"github.com/scrng/scoreboard-web/internal/web/middleware"
	"github.com/scrng/scoreboard-web/internal/web/templates"
)

// RoomHandler handles the room detail page and its point/player actions.
// Mutating actions render the page directly from post-refresh state, so each
// action costs exactly one room re-fetch.
type RoomHandler struct {
	views *view.Registry
}

// NewRoomHandler creates a new RoomHandler
func NewRoomHandler(views *view.Registry) *RoomHandler {
	return &RoomHandler{views: views}
}

// View renders the room detail page, fetching the room fresh. A `sort` query
// parameter switches the sticky presentation order.
func (h *RoomHandler) View(w http.ResponseWriter, r *http.Request) {
	rv, roomID := h.roomView(r)

	if raw := r.URL.Query().Get("sort"); raw != "" {
		rv.SetSort(view.ParseSortMode(raw))
	}

	rv.Load(r.Context(), roomID)
	h.render(w, r, rv)
}

// AddPlayer adds a player then re-fetches the room. A blank name is rejected
// locally with no upstream call.
func (h *RoomHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	rv, roomID := h.roomView(r)

	if err := r.ParseForm(); err == nil {
		rv.AddPlayer(r.Context(), roomID, r.FormValue("name"))
	}
	h.render(w, r, rv)
}

// RemovePlayer removes a player then re-fetches the room
func (h *RoomHandler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	rv, roomID := h.roomView(r)
	playerID := model.PlayerID(mux.Vars(r)["playerID"])

	rv.RemovePlayer(r.Context(), roomID, playerID)
	h.render(w, r, rv)
}

// AdjustPlayerPoints applies the submitted delta to one player. The input is
// clamped on every edit; the add button sends +value, the subtract button
// sends -value.
func (h *RoomHandler) AdjustPlayerPoints(w http.ResponseWriter, r *http.Request) {
	rv, roomID := h.roomView(r)
	playerID := model.PlayerID(mux.Vars(r)["playerID"])

	if err := r.ParseForm(); err == nil {
		rv.SetPlayerDelta(r.FormValue("points"))
		rv.AdjustPlayerPoints(r.Context(), roomID, playerID, sign(r.FormValue("dir")))
	}
	h.render(w, r, rv)
}

// AdjustAllPoints applies the submitted delta to every player in the room
func (h *RoomHandler) AdjustAllPoints(w http.ResponseWriter, r *http.Request) {
	rv, roomID := h.roomView(r)

	if err := r.ParseForm(); err == nil {
		rv.SetRoomDelta(r.FormValue("points"))
		rv.AdjustAllPoints(r.Context(), roomID, sign(r.FormValue("dir")))
	}
	h.render(w, r, rv)
}

func (h *RoomHandler) roomView(r *http.Request) (*view.RoomView, model.RoomID) {
	user := middleware.GetUser(r.Context())
	return h.views.RoomView(user.ID), model.RoomID(mux.Vars(r)["id"])
}

func (h *RoomHandler) render(w http.ResponseWriter, r *http.Request, rv *view.RoomView) {
	st := rv.State()

	title := "Room"
	if st.Room != nil {
		title = st.Room.Name
	}

	data := templates.RoomData{
		PageData: templates.PageData{
			Title: title,
			User:  middleware.GetUser(r.Context()),
			Flash: middleware.GetFlash(r.Context()),
		},
		State: st,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "room", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// sign maps the pressed button to the delta's direction
func sign(dir string) int {
	if dir == "sub" {
		return -1
	}
	return 1
}
