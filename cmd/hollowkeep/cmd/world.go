package cmd

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hollowkeep/hollowkeep/internal/watcher"
	"github.com/hollowkeep/hollowkeep/internal/world"
)

func newWorldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "world",
		Short: "Inspect and validate world files",
	}

	cmd.AddCommand(newWorldValidateCmd())
	cmd.AddCommand(newWorldInfoCmd())

	return cmd
}

func newWorldValidateCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a world file for errors",
		Long: `Check a world file for errors: YAML shape, duplicate IDs, exits
that lead nowhere, items placed in missing rooms.

With --watch, the file is re-checked after every save until
interrupted, which makes a tight loop for world authoring.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorldValidate(cmd, args[0], watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-validate on every change to the file")

	return cmd
}

func runWorldValidate(cmd *cobra.Command, path string, watch bool) error {
	out := cmd.OutOrStdout()

	validate := func() error {
		w, err := world.Load(path)
		if err != nil {
			fmt.Fprintf(out, "✗ %s: %v\n", path, err)
			return err
		}
		if ids := w.Unreachable(); len(ids) > 0 {
			fmt.Fprintf(out, "⚠ %s: valid, but unreachable from start: %s\n",
				path, strings.Join(ids, ", "))
			return nil
		}
		fmt.Fprintf(out, "✓ %s: %d rooms, %d items, all reachable\n",
			path, w.RoomCount(), w.ItemCount())
		return nil
	}

	if !watch {
		return validate()
	}

	// First pass immediately, then once per save. A broken file is not
	// an error in watch mode; the next save gets another chance.
	_ = validate()
	fmt.Fprintf(out, "watching %s (ctrl+c to stop)\n", path)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watcher.Watch(ctx, path, watcher.DefaultOptions(), func() {
		_ = validate()
	})
}

// worldInfo is the JSON shape of `world info`.
type worldInfo struct {
	Title       string   `json:"title"`
	Start       string   `json:"start"`
	Rooms       int      `json:"rooms"`
	Items       int      `json:"items"`
	Exits       int      `json:"exits"`
	Unreachable []string `json:"unreachable,omitempty"`
}

func newWorldInfoCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Show a world file's summary",
		Long: `Show a world file's title, starting room, and room/item/exit
counts. With no file, the built-in castle is described.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runWorldInfo(cmd, path, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runWorldInfo(cmd *cobra.Command, path, format string) error {
	w, err := loadWorld(path)
	if err != nil {
		return err
	}

	start, _ := w.Start()
	info := worldInfo{
		Title:       w.Title,
		Start:       start.ID,
		Rooms:       w.RoomCount(),
		Items:       w.ItemCount(),
		Exits:       w.ExitCount(),
		Unreachable: w.Unreachable(),
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "Title: %s\n", info.Title)
	fmt.Fprintf(out, "Start: %s\n", info.Start)
	fmt.Fprintf(out, "Rooms: %d\n", info.Rooms)
	fmt.Fprintf(out, "Items: %d\n", info.Items)
	fmt.Fprintf(out, "Exits: %d\n", info.Exits)
	if len(info.Unreachable) > 0 {
		fmt.Fprintf(out, "Unreachable: %s\n", strings.Join(info.Unreachable, ", "))
	}
	return nil
}
