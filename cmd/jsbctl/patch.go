package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsbtools/jsbkit/internal/writer"
	"github.com/jsbtools/jsbkit/jsb"
)

var (
	patchTableFile string
	patchOut       string
)

func init() {
	cmd := newPatchCmd()
	cmd.Flags().StringVar(&patchTableFile, "table", "",
		"Offset-table YAML (default: embedded physics table)")
	cmd.Flags().StringVar(&patchOut, "out", "",
		"Output path (default: rewrite the input file)")
	rootCmd.AddCommand(cmd)
}

func newPatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patch <file> <updates.json>",
		Short: "Patch 32-bit field values in place through an offset table",
		Long: `The patch command overwrites the stored values of offset-table fields
with the values from a JSON object of field name to integer. The file
length never changes, so all other offsets stay valid. The version
trailer fields are never patched.

Example:
  jsbctl patch physical_constraints.jsb new_values.json
  jsbctl patch physical_constraints.jsb new_values.json --out patched.jsb`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(args[0], args[1])
		},
	}
}

func readUpdates(path string) (map[string]uint32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wide map[string]int64
	if err := json.Unmarshal(raw, &wide); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	updates := make(map[string]uint32, len(wide))
	for field, v := range wide {
		if v < 0 || v > math.MaxUint32 {
			return nil, fmt.Errorf("%s: value %d does not fit in 32 bits", field, v)
		}
		updates[field] = uint32(v)
	}
	return updates, nil
}

func runPatch(path, updatesPath string) error {
	table, err := resolveTable(patchTableFile)
	if err != nil {
		return err
	}
	updates, err := readUpdates(updatesPath)
	if err != nil {
		return err
	}

	c, err := jsb.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	patched, warns, err := c.Patch(table, updates, jsb.VersionKeys)
	if err != nil {
		return err
	}
	logWarnings(warns)

	out := patchOut
	if out == "" {
		out = path
	}
	fw := writer.FileWriter{Path: out}
	if err := fw.WriteContainer(patched); err != nil {
		return err
	}
	slog.Info("patched container written",
		"path", out, "fields", len(updates), "warnings", len(warns))
	return nil
}
