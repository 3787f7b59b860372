package web_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/scrng/scoreboard-web/internal/gateway"
	"github.com/scrng/scoreboard-web/internal/model"
	"github.com/scrng/scoreboard-web/internal/session"
	"github.com/scrng/scoreboard-web/internal/testutil"
	"github.com/scrng/scoreboard-web/internal/view"
	"github.com/scrng/scoreboard-web/internal/web"
)

// webTestServer wires the full frontend against an in-process fake of the
// upstream score API
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	api     *fakeAPI
	cookies *cookieJar
}

func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	api := newFakeAPI(t)
	logger := testutil.NopLogger()
	client := gateway.NewClient(api.srv.URL)

	router := web.NewRouter(web.RouterConfig{
		Logger:    logger,
		Client:    client,
		Sessions:  session.New(),
		Views:     view.NewRegistry(client, logger),
		StaticDir: "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		api:     api,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)

	return rr
}

func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// login authenticates a seeded user and asserts the session was established
func (ts *webTestServer) login(name, password string) {
	ts.t.Helper()

	rr := ts.post("/login", url.Values{"name": {name}, "password": {password}})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "expected redirect after login")
	require.Equal(ts.t, "/", rr.Header().Get("Location"))
	require.True(ts.t, ts.cookies.hasSession(), "expected session cookie to be set")
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies[session.CookieName]
	return ok
}

// apiUser is a seeded account on the fake upstream
type apiUser struct {
	user     model.User
	password string
}

// fakeAPI is an in-memory stand-in for the remote score API. It counts the
// upstream traffic each frontend action generates, which is what most of the
// web tests are really about.
type fakeAPI struct {
	t   *testing.T
	mu  sync.Mutex
	srv *httptest.Server

	users  map[string]*apiUser
	rooms  map[model.RoomID]*model.Room
	owners map[model.RoomID]model.UserID
	order  []model.RoomID
	nextID int

	authCalls   int
	listCalls   int
	roomFetches map[model.RoomID]int
	createCalls int
	addCalls    int
	adjustCalls int

	failList      bool
	createFailMsg string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{
		t:           t,
		users:       make(map[string]*apiUser),
		rooms:       make(map[model.RoomID]*model.Room),
		owners:      make(map[model.RoomID]model.UserID),
		roomFetches: make(map[model.RoomID]int),
	}

	r := mux.NewRouter()
	r.HandleFunc("/users/authenticate", api.authenticate).Methods(http.MethodPost)
	r.HandleFunc("/users", api.register).Methods(http.MethodPost)
	r.HandleFunc("/userRooms/{userId}", api.listRooms).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{id}", api.getRoom).Methods(http.MethodGet)
	r.HandleFunc("/rooms/{id}", api.createRoom).Methods(http.MethodPost)
	r.HandleFunc("/rooms/{id}", api.deleteRoom).Methods(http.MethodDelete)
	r.HandleFunc("/rooms/{id}/players", api.addPlayer).Methods(http.MethodPost)
	r.HandleFunc("/rooms/{id}/players/points", api.adjustAllPoints).Methods(http.MethodPut)
	r.HandleFunc("/rooms/{id}/players/{playerId}", api.removePlayer).Methods(http.MethodDelete)
	r.HandleFunc("/rooms/{id}/players/{playerId}/points", api.adjustPlayerPoints).Methods(http.MethodPut)

	api.srv = httptest.NewServer(r)
	t.Cleanup(api.srv.Close)

	return api
}

// seedUser registers an account directly, bypassing HTTP
func (a *fakeAPI) seedUser(name, password string) model.User {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextID++
	user := model.User{ID: model.UserID(fmt.Sprintf("u%d", a.nextID)), Name: name}
	a.users[name] = &apiUser{user: user, password: password}
	return user
}

// seedRoom creates a room directly, bypassing HTTP
func (a *fakeAPI) seedRoom(owner model.UserID, name string, players ...model.Player) model.RoomID {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.nextID++
	id := model.RoomID(fmt.Sprintf("r%d", a.nextID))
	a.rooms[id] = &model.Room{ID: id, Name: name, Players: players}
	a.owners[id] = owner
	a.order = append(a.order, id)
	return id
}

// playerPoints reads a player's points from upstream state
func (a *fakeAPI) playerPoints(roomID model.RoomID, playerID model.PlayerID) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	room := a.rooms[roomID]
	require.NotNil(a.t, room)
	for _, p := range room.Players {
		if p.ID == playerID {
			return p.Points
		}
	}
	a.t.Fatalf("player %s not in room %s", playerID, roomID)
	return 0
}

func (a *fakeAPI) fetches(roomID model.RoomID) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.roomFetches[roomID]
}

func (a *fakeAPI) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *fakeAPI) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, map[string]string{"error": msg})
}

func (a *fakeAPI) authenticate(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.authCalls++

	var creds struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&creds)

	acct, ok := a.users[creds.Name]
	if !ok || acct.password != creds.Password {
		a.writeError(w, http.StatusUnauthorized, "Invalid name or password")
		return
	}

	// The real API wraps the authenticated identity
	a.writeJSON(w, http.StatusOK, map[string]model.User{"user": acct.user})
}

func (a *fakeAPI) register(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var creds struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&creds)

	if _, exists := a.users[creds.Name]; exists {
		a.writeError(w, http.StatusConflict, "Name already taken")
		return
	}

	a.nextID++
	user := model.User{ID: model.UserID(fmt.Sprintf("u%d", a.nextID)), Name: creds.Name}
	a.users[creds.Name] = &apiUser{user: user, password: creds.Password}
	a.writeJSON(w, http.StatusCreated, user)
}

func (a *fakeAPI) listRooms(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.listCalls++

	if a.failList {
		a.writeError(w, http.StatusInternalServerError, "Upstream unavailable")
		return
	}

	userID := model.UserID(mux.Vars(r)["userId"])
	rooms := []model.Room{}
	for _, id := range a.order {
		if a.owners[id] == userID {
			rooms = append(rooms, *a.rooms[id])
		}
	}
	a.writeJSON(w, http.StatusOK, rooms)
}

func (a *fakeAPI) getRoom(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := model.RoomID(mux.Vars(r)["id"])
	a.roomFetches[id]++

	room, ok := a.rooms[id]
	if !ok {
		a.writeError(w, http.StatusNotFound, "Room not found")
		return
	}
	a.writeJSON(w, http.StatusOK, room)
}

func (a *fakeAPI) createRoom(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.createCalls++

	if a.createFailMsg != "" {
		a.writeError(w, http.StatusBadRequest, a.createFailMsg)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	owner := model.UserID(mux.Vars(r)["id"])
	a.nextID++
	id := model.RoomID(fmt.Sprintf("r%d", a.nextID))
	room := &model.Room{ID: id, Name: req.Name, Players: []model.Player{}}
	a.rooms[id] = room
	a.owners[id] = owner
	a.order = append(a.order, id)

	a.writeJSON(w, http.StatusCreated, room)
}

func (a *fakeAPI) deleteRoom(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id := model.RoomID(mux.Vars(r)["id"])
	if _, ok := a.rooms[id]; !ok {
		a.writeError(w, http.StatusNotFound, "Room not found")
		return
	}

	delete(a.rooms, id)
	delete(a.owners, id)
	for i, rid := range a.order {
		if rid == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *fakeAPI) addPlayer(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.addCalls++

	var req struct {
		PlayerName string `json:"playerName"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	room, ok := a.rooms[model.RoomID(mux.Vars(r)["id"])]
	if !ok {
		a.writeError(w, http.StatusNotFound, "Room not found")
		return
	}

	a.nextID++
	room.Players = append(room.Players, model.Player{
		ID:   model.PlayerID(fmt.Sprintf("p%d", a.nextID)),
		Name: req.PlayerName,
	})
	w.WriteHeader(http.StatusCreated)
}

func (a *fakeAPI) removePlayer(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	vars := mux.Vars(r)
	room, ok := a.rooms[model.RoomID(vars["id"])]
	if !ok {
		a.writeError(w, http.StatusNotFound, "Room not found")
		return
	}

	playerID := model.PlayerID(vars["playerId"])
	for i, p := range room.Players {
		if p.ID == playerID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *fakeAPI) adjustPlayerPoints(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.adjustCalls++

	var req struct {
		Points int `json:"points"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	vars := mux.Vars(r)
	room, ok := a.rooms[model.RoomID(vars["id"])]
	if !ok {
		a.writeError(w, http.StatusNotFound, "Room not found")
		return
	}

	playerID := model.PlayerID(vars["playerId"])
	for i := range room.Players {
		if room.Players[i].ID == playerID {
			room.Players[i].Points += req.Points
			break
		}
	}
	w.WriteHeader(http.StatusOK)
}

func (a *fakeAPI) adjustAllPoints(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.adjustCalls++

	var req struct {
		Points int `json:"points"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	room, ok := a.rooms[model.RoomID(mux.Vars(r)["id"])]
	if !ok {
		a.writeError(w, http.StatusNotFound, "Room not found")
		return
	}

	for i := range room.Players {
		room.Players[i].Points += req.Points
	}
	w.WriteHeader(http.StatusOK)
}
