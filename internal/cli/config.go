package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scrng/scoreboard-web/internal/model"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	UserFile  string
	Output    string

	// User is the logged-in identity loaded from UserFile, if any
	User *model.User
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("SCOREBOARD_API", "http://localhost:3333"),
		UserFile:  getEnvOrDefault("SCOREBOARD_USER_FILE", defaultUserFile()),
		Output:    "text",
	}
}

// LoadUser loads the saved user from the user file if present
func (c *Config) LoadUser() error {
	data, err := os.ReadFile(c.UserFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not logged in is fine
		}
		return err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("invalid user file %s: %w", c.UserFile, err)
	}
	c.User = &user
	return nil
}

// SaveUser persists the logged-in user to the user file
func (c *Config) SaveUser(user *model.User) error {
	c.User = user

	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.UserFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.UserFile, data, 0600)
}

// ClearUser removes the saved user file
func (c *Config) ClearUser() error {
	c.User = nil
	if err := os.Remove(c.UserFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RequireUser returns the logged-in user or an error telling the caller to
// log in first
func (c *Config) RequireUser() (*model.User, error) {
	if c.User == nil {
		return nil, errors.New("not logged in: run 'scorecli auth login' first")
	}
	return c.User, nil
}

func defaultUserFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scorecli/user.json"
	}
	return filepath.Join(home, ".scorecli", "user.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
