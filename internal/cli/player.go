package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scrng/scoreboard-web/internal/model"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player management commands",
	}

	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerPointsCmd())
	cmd.AddCommand(newPlayerPointsAllCmd())

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <room-id> <name>",
		Short: "Add a player to a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.TrimSpace(args[1])
			if name == "" {
				return fmt.Errorf("player name is required")
			}

			roomID := model.RoomID(args[0])
			if err := client.AddPlayer(cmd.Context(), roomID, name); err != nil {
				return err
			}

			// Refresh-after-write: show the authoritative room, not an ack
			room, err := client.GetRoom(cmd.Context(), roomID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*room)
			return nil
		},
	}
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <room-id> <player-id>",
		Short: "Remove a player from a room",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID := model.RoomID(args[0])
			if err := client.RemovePlayer(cmd.Context(), roomID, model.PlayerID(args[1])); err != nil {
				return err
			}

			room, err := client.GetRoom(cmd.Context(), roomID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*room)
			return nil
		},
	}
}

func newPlayerPointsCmd() *cobra.Command {
	var delta int

	cmd := &cobra.Command{
		Use:   "points <room-id> <player-id>",
		Short: "Adjust one player's points by a signed delta",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID := model.RoomID(args[0])
			if err := client.AdjustPlayerPoints(cmd.Context(), roomID, model.PlayerID(args[1]), delta); err != nil {
				return err
			}

			room, err := client.GetRoom(cmd.Context(), roomID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*room)
			return nil
		},
	}

	cmd.Flags().IntVar(&delta, "delta", 0, "Signed point delta (required)")
	_ = cmd.MarkFlagRequired("delta")

	return cmd
}

func newPlayerPointsAllCmd() *cobra.Command {
	var delta int

	cmd := &cobra.Command{
		Use:   "points-all <room-id>",
		Short: "Adjust every player's points by a signed delta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roomID := model.RoomID(args[0])
			if err := client.AdjustAllPoints(cmd.Context(), roomID, delta); err != nil {
				return err
			}

			room, err := client.GetRoom(cmd.Context(), roomID)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(*room)
			return nil
		},
	}

	cmd.Flags().IntVar(&delta, "delta", 0, "Signed point delta (required)")
	_ = cmd.MarkFlagRequired("delta")

	return cmd
}
