package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/scrng/scoreboard-web/internal/gateway"
	"github.com/scrng/scoreboard-web/internal/session"
	"github.com/scrng/scoreboard-web/internal/view"
	"github.com/scrng/scoreboard-web/internal/web/middleware"
	"github.com/scrng/scoreboard-web/internal/web/templates"
)

// AuthHandler handles the login page and auth actions
type AuthHandler struct {
	client   *gateway.Client
	sessions *session.Store
	views    *view.Registry
	logger   *slog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(client *gateway.Client, sessions *session.Store, views *view.Registry, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		client:   client,
		sessions: sessions,
		views:    views,
		logger:   logger,
	}
}

// LoginPage renders the login page. An already authenticated visitor is
// redirected away to the landing view.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := templates.LoginData{
		PageData: templates.PageData{
			Title: "Login",
			Flash: middleware.GetFlash(r.Context()),
		},
		RegisterOpen: r.URL.Query().Get("register") == "1",
	}
	renderLogin(w, r, data)
}

// Login handles login form submission
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if middleware.GetUser(r.Context()) != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	password := r.FormValue("password")

	// Local validation: no network call for empty fields
	if name == "" || password == "" {
		h.renderLoginError(w, r, "Name and password are required", name)
		return
	}

	user, err := h.client.Authenticate(r.Context(), name, password)
	if err != nil {
		h.renderLoginError(w, r, h.userFacing(err, "Could not sign in"), name)
		return
	}

	h.sessions.Write(w, user)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Register handles the registration modal submission. Success does not log
// the user in; they are sent back to the login form to sign in themselves.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderRegisterError(w, r, "Invalid form data", "")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	password := r.FormValue("password")
	confirm := r.FormValue("password_confirm")

	// All local validation happens before any network call
	if name == "" || password == "" {
		h.renderRegisterError(w, r, "Name and password are required", name)
		return
	}
	if password != confirm {
		h.renderRegisterError(w, r, "Passwords do not match", name)
		return
	}

	if _, err := h.client.Register(r.Context(), name, password); err != nil {
		h.renderRegisterError(w, r, h.userFacing(err, "Could not create account"), name)
		return
	}

	middleware.SetFlash(w, "success", "Account created! Please sign in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Logout clears the session and discards the user's view state
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if user := h.sessions.Read(r); user != nil {
		h.views.Drop(user.ID)
	}

	h.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, msg, name string) {
	data := templates.LoginData{
		PageData: templates.PageData{Title: "Login"},
		Name:     name,
		Error:    msg,
	}
	renderLogin(w, r, data)
}

func (h *AuthHandler) renderRegisterError(w http.ResponseWriter, r *http.Request, msg, name string) {
	data := templates.LoginData{
		PageData:      templates.PageData{Title: "Login"},
		RegisterOpen:  true,
		RegisterName:  name,
		RegisterError: msg,
	}
	renderLogin(w, r, data)
}

func renderLogin(w http.ResponseWriter, r *http.Request, data templates.LoginData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, "login", data); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// userFacing surfaces an application error's message verbatim; transport
// failures are logged and get the fallback text
func (h *AuthHandler) userFacing(err error, fallback string) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	h.logger.Error("auth request failed", slog.String("error", err.Error()))
	return fallback
}
