package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/scrng/scoreboard-web/internal/model"
)

type credentials struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// userEnvelope accepts both response shapes the API is known to produce:
// the bare user object, or the same object wrapped as {"user": {...}}.
type userEnvelope struct {
	Wrapped *model.User `json:"user"`
	model.User
}

// Authenticate logs a user in and returns their identity
func (c *Client) Authenticate(ctx context.Context, name, password string) (*model.User, error) {
	return c.userCall(ctx, "/users/authenticate", name, password)
}

// Register creates a new user account. Registration does not log the user in.
func (c *Client) Register(ctx context.Context, name, password string) (*model.User, error) {
	return c.userCall(ctx, "/users", name, password)
}

func (c *Client) userCall(ctx context.Context, path, name, password string) (*model.User, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodPost, path, credentials{Name: name, Password: password}, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("empty user response")
	}

	var env userEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to parse user response: %w", err)
	}
	if env.Wrapped != nil {
		return env.Wrapped, nil
	}
	return &env.User, nil
}
