package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scrng/scoreboard-web/internal/model"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room management commands",
	}

	cmd.AddCommand(newRoomListCmd())
	cmd.AddCommand(newRoomGetCmd())
	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomDeleteCmd())

	return cmd
}

func newRoomListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := cfg.RequireUser()
			if err != nil {
				return err
			}

			rooms, err := client.ListRooms(cmd.Context(), user.ID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(rooms)
			return nil
		},
	}
}

func newRoomGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <room-id>",
		Short: "Get a room with its players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			room, err := client.GetRoom(cmd.Context(), model.RoomID(args[0]))
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*room)
			return nil
		},
	}
}

func newRoomCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[0])
			if name == "" {
				return fmt.Errorf("room name is required")
			}

			user, err := cfg.RequireUser()
			if err != nil {
				return err
			}

			room, err := client.CreateRoom(cmd.Context(), user.ID, name)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*room)
			return nil
		},
	}
}

func newRoomDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <room-id>",
		Short: "Delete a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteRoom(cmd.Context(), model.RoomID(args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted room %s", args[0]))
			return nil
		},
	}
}
