package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/scummkit/internal/names"
	"github.com/joshuapare/scummkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newNamesCmd())
}

func newNamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "names <config>",
		Short: "Validate a naming configuration",
		Long: `The names command parses a naming configuration (globals, scripts,
locals, room variables and enums) and reports how many names it defines.

Example:
  scummctl names game.ini`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNames(args)
		},
	}
	return cmd
}

func runNames(args []string) error {
	path := args[0]
	printVerbose("Parsing: %s\n", path)

	cfg, err := names.Load(path)
	if err != nil {
		kind := types.ErrKindIO
		if errors.Is(err, names.ErrBadConfig) {
			kind = types.ErrKindConfig
		}
		return &types.Error{Kind: kind, Msg: path, Offset: -1, Err: err}
	}

	s := cfg.Summary()
	if jsonOut {
		return printJSON(s)
	}
	printInfo("%s: ok\n", path)
	printInfo("  Globals: %d\n", s.Globals)
	printInfo("  Scripts: %d (%d locals)\n", s.Scripts, s.Locals)
	printInfo("  Rooms: %d (%d vars, %d scripts)\n", s.Rooms, s.RoomVars, s.RoomScripts)
	printInfo("  Enums: %d (%d constants)\n", s.Enums, s.Constants)
	return nil
}
