package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scrng/scoreboard-web/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": err.Error(),
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.User:
		o.printUser(v)
	case model.Room:
		o.printRoom(v)
	case []model.Room:
		o.printRooms(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printUser(u model.User) {
	fmt.Printf("User: %s\n", u.Name)
	fmt.Printf("ID:   %s\n", u.ID)
}

func (o *Output) printRoom(r model.Room) {
	fmt.Printf("Room: %s (%s)\n", r.Name, r.ID)
	if len(r.Players) == 0 {
		fmt.Println("No players")
		return
	}
	fmt.Println("Players:")
	for _, p := range r.Players {
		fmt.Printf("  %-24s %6d  (%s)\n", p.Name, p.Points, p.ID)
	}
}

func (o *Output) printRooms(rooms []model.Room) {
	if len(rooms) == 0 {
		fmt.Println("No rooms")
		return
	}
	for _, r := range rooms {
		fmt.Printf("%s  %s (%d players)\n", r.ID, r.Name, len(r.Players))
	}
}
