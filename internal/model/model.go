package model

// UserID uniquely identifies a registered user.
// IDs are assigned by the API; the client never generates them.
type UserID string

// RoomID uniquely identifies a room.
type RoomID string

// PlayerID uniquely identifies a player within a room.
type PlayerID string

// User is the authenticated identity held for the session.
// The password is never retained client-side.
type User struct {
	ID   UserID `json:"id"`
	Name string `json:"name"`
}

// Room is a named collection of players with a shared score sheet.
// A locally held Room is a snapshot as of its last fetch, not a live replica.
type Room struct {
	ID      RoomID   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Player is a participant in exactly one room holding an integer point total.
type Player struct {
	ID     PlayerID `json:"id"`
	Name   string   `json:"name"`
	Points int      `json:"points"`
}
