package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsbtools/jsbkit/jsb"
	"github.com/jsbtools/jsbkit/jsb/tables"
	"github.com/jsbtools/jsbkit/pkg/types"
)

var (
	copiesTableFile   string
	copiesIndex       int
	copiesWithVersion bool
)

func init() {
	cmd := newCopiesCmd()
	cmd.Flags().StringVar(&copiesTableFile, "table", "",
		"Offset-table YAML (default: embedded physics table)")
	cmd.Flags().IntVar(&copiesIndex, "copy", -1,
		"Print only this copy (0-based, -1 = all)")
	cmd.Flags().BoolVar(&copiesWithVersion, "with-version", false,
		"Include the version trailer fields")
	rootCmd.AddCommand(cmd)
}

func newCopiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copies <file>",
		Short: "Decode every copy of the offset-table fields to JSON",
		Long: `The copies command reads each occurrence of every field an offset
table knows about and prints one object per copy.

Example:
  jsbctl copies physical_constraints.jsb
  jsbctl copies physical_constraints.jsb --copy 0
  jsbctl copies custom.jsb --table offsets.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCopies(args[0])
		},
	}
}

// resolveTable loads the offset table from tableFile, or falls back to
// the embedded physics table.
func resolveTable(tableFile string) (types.OffsetTable, error) {
	if tableFile != "" {
		return tables.LoadOffsetTable(tableFile)
	}
	return tables.PhysicsOffsets(), nil
}

func runCopies(path string) error {
	table, err := resolveTable(copiesTableFile)
	if err != nil {
		return err
	}

	c, err := jsb.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	ignore := jsb.VersionKeys
	if copiesWithVersion {
		ignore = nil
	}
	copies, err := c.DecodeOccurrences(table, ignore)
	if err != nil {
		return err
	}
	if copiesIndex >= 0 {
		if copiesIndex >= len(copies) {
			return fmt.Errorf("copy %d out of range (file has %d)", copiesIndex, len(copies))
		}
		return printJSON(copies[copiesIndex])
	}
	return printJSON(copies)
}
