package view

import (
	"context"
	"sync"

	"github.com/scrng/scoreboard-web/internal/model"
)

// pointsCall records one points adjustment sent upstream
type pointsCall struct {
	roomID   model.RoomID
	playerID model.PlayerID
	delta    int
}

// fakeGateway is an in-memory Gateway that records every call and lets tests
// inject failures per operation.
type fakeGateway struct {
	mu sync.Mutex

	listResult []model.Room
	listErr    error
	listCalls  int

	getResult *model.Room
	getErr    error
	getCalls  int

	createErr   error
	createCalls int
	createdName string

	deleteErr   error
	deleteCalls int

	addErr    error
	addCalls  int
	addedName string

	removeErr   error
	removeCalls int
	removedID   model.PlayerID

	adjustErr    error
	adjustCalls  []pointsCall
	adjustAllErr error
	allCalls     []pointsCall
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{}
}

func (f *fakeGateway) ListRooms(ctx context.Context, userID model.UserID) ([]model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Room(nil), f.listResult...), nil
}

func (f *fakeGateway) GetRoom(ctx context.Context, roomID model.RoomID) (*model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, f.getErr
	}
	room := *f.getResult
	room.Players = append([]model.Player(nil), f.getResult.Players...)
	return &room, nil
}

func (f *fakeGateway) CreateRoom(ctx context.Context, userID model.UserID, name string) (*model.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	f.createdName = name
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &model.Room{ID: "created", Name: name}, nil
}

func (f *fakeGateway) DeleteRoom(ctx context.Context, roomID model.RoomID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	return f.deleteErr
}

func (f *fakeGateway) AddPlayer(ctx context.Context, roomID model.RoomID, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addCalls++
	f.addedName = name
	return f.addErr
}

func (f *fakeGateway) RemovePlayer(ctx context.Context, roomID model.RoomID, playerID model.PlayerID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeCalls++
	f.removedID = playerID
	return f.removeErr
}

func (f *fakeGateway) AdjustPlayerPoints(ctx context.Context, roomID model.RoomID, playerID model.PlayerID, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adjustCalls = append(f.adjustCalls, pointsCall{roomID: roomID, playerID: playerID, delta: delta})
	return f.adjustErr
}

func (f *fakeGateway) AdjustAllPoints(ctx context.Context, roomID model.RoomID, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls = append(f.allCalls, pointsCall{roomID: roomID, delta: delta})
	return f.adjustAllErr
}
