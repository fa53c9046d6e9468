package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/scummkit/decompile"
	"github.com/joshuapare/scummkit/internal/logger"
	"github.com/joshuapare/scummkit/internal/sink"
)

var (
	extractOut    string
	extractZip    string
	extractDisks  int
	extractZstd   bool
	extractStrict bool
	extractPlain  bool
)

func init() {
	cmd := newExtractCmd()
	cmd.Flags().StringVarP(&extractOut, "output", "o", "out", "Output directory")
	cmd.Flags().StringVar(&extractZip, "zip", "", "Write everything into this zip file instead of a directory")
	cmd.Flags().IntVar(&extractDisks, "disks", 0, "Number of disk files (0 = from index)")
	cmd.Flags().BoolVar(&extractZstd, "zstd", false, "Compress zip entries with zstd instead of deflate")
	cmd.Flags().BoolVar(&extractStrict, "strict-rooms", false, "Fail when a room appears on more than one disk")
	cmd.Flags().BoolVar(&extractPlain, "no-cipher", false, "Read index and disk files without XOR decoding")
	rootCmd.AddCommand(cmd)
}

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <index>",
		Short: "Extract every resource block of a game",
		Long: `The extract command decodes all disk files belonging to an index and
writes one file per resource block, a room.scu descriptor per room and a
project.txt manifest.

Disk files are found next to the index by replacing its trailing digits:
game.he0 is read together with game.he1, game.he2, ...

Example:
  scummctl extract game.he0 -o game
  scummctl extract game.he0 --zip game.zip --zstd`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd.Context(), args)
		},
	}
	return cmd
}

func openSink() (sink.Sink, string, error) {
	if extractZip != "" {
		f, err := os.Create(extractZip)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create zip: %w", err)
		}
		method := sink.Deflate
		if extractZstd {
			method = sink.Zstd
		}
		return sink.NewZip(f, method), extractZip, nil
	}
	if extractZstd {
		return nil, "", fmt.Errorf("--zstd requires --zip")
	}
	d, err := sink.NewDir(extractOut)
	if err != nil {
		return nil, "", err
	}
	return d, extractOut, nil
}

func runExtract(ctx context.Context, args []string) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	indexPath := args[0]

	out, dest, err := openSink()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to finish %s: %w", dest, cerr)
		}
	}()

	printVerbose("Reading index: %s\n", indexPath)

	stats, err := decompile.Run(ctx, indexPath, out.Write, decompile.Options{
		Disks:       extractDisks,
		StrictRooms: extractStrict,
		NoCipher:    extractPlain,
		Logger:      logger.L,
	})
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]any{
			"output": dest,
			"disks":  stats.Disks,
			"rooms":  stats.Rooms,
			"blocks": stats.Blocks,
			"bytes":  stats.Bytes,
		})
	}
	printInfo("Extracted %d blocks (%d bytes) from %d rooms on %d disk(s) to %s\n",
		stats.Blocks, stats.Bytes, stats.Rooms, stats.Disks, dest)
	return nil
}
