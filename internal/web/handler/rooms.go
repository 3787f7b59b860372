package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scrng/scoreboard-web/internal/model"
	"github.com/scrng/scoreboard-web/internal/view"
	"github.com/scrng/scoreboard-web/internal/web/middleware"
	"github.com/scrng/scoreboard-web/internal/web/templates"
)

// RoomsHandler handles the room list page and its actions
type RoomsHandler struct {
	views *view.Registry
}

// NewRoomsHandler creates a new RoomsHandler
func NewRoomsHandler(views *view.Registry) *RoomsHandler {
	return &RoomsHandler{views: views}
}

// List renders the room list. The list is re-fetched on every visit; if the
// fetch fails the previous list is rendered unchanged.
func (h *RoomsHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	list := h.views.RoomList(user.ID)

	if r.URL.Query().Get("create") == "1" {
		list.OpenDialog()
	}

	list.Load(r.Context())
	h.render(w, r, list)
}

// Create handles room creation. On success the view has already re-fetched
// the list and closed the dialog, so a plain redirect suffices; on failure
// the page is rendered directly with the dialog still open.
func (h *RoomsHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	list := h.views.RoomList(user.ID)

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	list.Create(r.Context(), r.FormValue("name"))

	if list.State().DialogOpen {
		h.render(w, r, list)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// CancelCreate closes the creation dialog
func (h *RoomsHandler) CancelCreate(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	h.views.RoomList(user.ID).CloseDialog()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete fires the delete then re-fetches the list. The delete's own result
// is not surfaced: a room that fails to disappear is the only signal.
func (h *RoomsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())
	roomID := model.RoomID(mux.Vars(r)["id"])

	h.views.RoomList(user.ID).Delete(r.Context(), roomID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *RoomsHandler) render(w http.ResponseWriter, r *http.Request, list *view.RoomList) {
	data := templates.RoomsData{
		PageData: templates.PageData{
			Title: "Your rooms",
			User:  middleware.GetUser(r.Context()),
			Flash: middleware.GetFlash(r.Context()),
		},
		List: list.State(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "rooms", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
