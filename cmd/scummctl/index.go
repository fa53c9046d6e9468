package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/scummkit/internal/format"
	"github.com/joshuapare/scummkit/internal/index"
)

func init() {
	rootCmd.AddCommand(newIndexCmd())
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <index>",
		Short: "Show the room table and directories of an index file",
		Long: `The index command decodes an index file and lists every room with its
name, disk and container offset, followed by the size of each resource
directory.

Example:
  scummctl index game.he0
  scummctl index game.he0 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(args)
		},
	}
	return cmd
}

type indexRoom struct {
	Number int    `json:"number"`
	Name   string `json:"name,omitempty"`
	Disk   uint8  `json:"disk"`
	Offset uint32 `json:"offset"`
}

type indexDirectory struct {
	Tag     string `json:"tag"`
	Entries int    `json:"entries"`
}

type indexReport struct {
	Disks       int              `json:"disks"`
	Rooms       []indexRoom      `json:"rooms"`
	Directories []indexDirectory `json:"directories"`
}

func runIndex(args []string) error {
	path := args[0]
	printVerbose("Reading index: %s\n", path)

	ix, err := index.Load(path, format.XORKey)
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	report := indexReport{Disks: ix.Disks(), Rooms: []indexRoom{}, Directories: []indexDirectory{}}
	for _, r := range ix.Rooms() {
		report.Rooms = append(report.Rooms, indexRoom{Number: r.Number, Name: r.Name, Disk: r.Disk, Offset: r.Offset})
	}
	for _, d := range ix.Directories() {
		report.Directories = append(report.Directories, indexDirectory{Tag: d.ID.String(), Entries: d.Len()})
	}

	if jsonOut {
		return printJSON(report)
	}

	printInfo("\nIndex Information:\n")
	printInfo("  File: %s\n", path)
	printInfo("  Disks: %d\n", report.Disks)
	printInfo("\nRooms:\n")
	for _, r := range report.Rooms {
		name := r.Name
		if name == "" {
			name = "-"
		}
		printInfo("  %4d  %-24s disk=%d offset=%#x\n", r.Number, name, r.Disk, r.Offset)
	}
	printInfo("\nDirectories:\n")
	for _, d := range report.Directories {
		printInfo("  %s  %d entries\n", d.Tag, d.Entries)
	}
	return nil
}
