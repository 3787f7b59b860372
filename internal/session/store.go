package session

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/scrng/scoreboard-web/internal/model"
)

const (
	// CookieName is the session cookie holding the serialized user
	CookieName = "scoreboard_user"

	// MaxAge is the cookie lifetime. Expiry is enforced only by the cookie
	// itself: an expired cookie simply reads back as absent.
	MaxAge = 7 * 24 * time.Hour
)

// Store reads and writes the session identity as a URL-encoded JSON user
// cookie. There is one store shared process-wide; the cookie is the single
// source of truth, re-read on every request.
type Store struct{}

// New creates a session store
func New() *Store {
	return &Store{}
}

// Read returns the user from the request's session cookie, or nil when the
// cookie is absent or undecodable. Absence means unauthenticated.
func (s *Store) Read(r *http.Request) *model.User {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(decoded), &user); err != nil {
		return nil
	}
	if user.ID == "" {
		return nil
	}
	return &user
}

// Write persists the user into the session cookie. A nil user clears the
// cookie immediately.
func (s *Store) Write(w http.ResponseWriter, user *model.User) {
	if user == nil {
		s.Clear(w)
		return
	}

	data, err := json.Marshal(user)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    url.QueryEscape(string(data)),
		Path:     "/",
		MaxAge:   int(MaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
