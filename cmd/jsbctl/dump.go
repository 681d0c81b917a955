package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jsbtools/jsbkit/jsb"
)

var dumpWindow int

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpWindow, "window", 64, "Bytes of context around the offset")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file> <offset>",
		Short: "Hex/ASCII window around an offset",
		Long: `The dump command prints a hex/ASCII view of the bytes around an
offset, the same rendering decode errors embed. Offsets accept 0x
notation.

Example:
  jsbctl dump player_ratings_data.jsb 0x67725
  jsbctl dump physical_constraints.jsb 22 --window 128`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDumpWindow(args[0], args[1])
		},
	}
}

func runDumpWindow(path, offArg string) error {
	off, err := strconv.ParseInt(offArg, 0, 64)
	if err != nil {
		return fmt.Errorf("offset %q: %w", offArg, err)
	}

	c, err := jsb.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	if off < 0 || off >= int64(c.Size()) {
		return fmt.Errorf("offset 0x%X outside file (%d bytes)", off, c.Size())
	}
	fmt.Print(c.Dump(int(off), dumpWindow))
	return nil
}
