package templates

import (
	"embed"
	"html/template"
	"io"

	"github.com/scrng/scoreboard-web/internal/model"
	"github.com/scrng/scoreboard-web/internal/view"
)

//go:embed *.html
var files embed.FS

var pages = template.Must(template.ParseFS(files, "*.html"))

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "success", "error", "info"
	Message string
}

// PageData is the data every page needs
type PageData struct {
	Title string
	User  *model.User
	Flash *FlashMessage
}

// LoginData renders the login page, including the registration modal
type LoginData struct {
	PageData
	Name  string
	Error string

	RegisterOpen  bool
	RegisterName  string
	RegisterError string
}

// RoomsData renders the room list page
type RoomsData struct {
	PageData
	List view.ListState
}

// RoomData renders the room detail page
type RoomData struct {
	PageData
	State view.RoomState
}

// Render executes the named page template
func Render(w io.Writer, page string, data any) error {
	return pages.ExecuteTemplate(w, page, data)
}
