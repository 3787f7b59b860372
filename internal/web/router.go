package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/scrng/scoreboard-web/internal/gateway"
	"github.com/scrng/scoreboard-web/internal/session"
	"github.com/scrng/scoreboard-web/internal/view"
	"github.com/scrng/scoreboard-web/internal/web/handler"
	"github.com/scrng/scoreboard-web/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger    *slog.Logger
	Client    *gateway.Client
	Sessions  *session.Store
	Views     *view.Registry
	StaticDir string // Path to static files directory
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.RequireUser(cfg.Sessions)
	optionalAuthMiddleware := middleware.OptionalUser(cfg.Sessions)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.Client, cfg.Sessions, cfg.Views, cfg.Logger)
	roomsHandler := handler.NewRoomsHandler(cfg.Views)
	roomHandler := handler.NewRoomHandler(cfg.Views)

	// Static files
	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	// Public routes (optional auth so an authed visitor bounces off /login)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	public.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	public.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Protected routes (require auth)
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)

	// Room list routes
	protected.HandleFunc("/", roomsHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/rooms", roomsHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/cancel", roomsHandler.CancelCreate).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{id}/delete", roomsHandler.Delete).Methods(http.MethodPost)

	// Room detail routes
	protected.HandleFunc("/rooms/{id}", roomHandler.View).Methods(http.MethodGet)
	protected.HandleFunc("/rooms/{id}/players", roomHandler.AddPlayer).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{id}/players/{playerID}/remove", roomHandler.RemovePlayer).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{id}/players/{playerID}/points", roomHandler.AdjustPlayerPoints).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{id}/points", roomHandler.AdjustAllPoints).Methods(http.MethodPost)

	return r
}
