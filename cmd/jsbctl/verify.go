package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsbtools/jsbkit/jsb"
	"github.com/jsbtools/jsbkit/jsb/verify"
)

var (
	verifyTableFile string
	verifyExpect    string
)

func init() {
	cmd := newVerifyCmd()
	cmd.Flags().StringVar(&verifyTableFile, "table", "",
		"Offset-table YAML (default: embedded physics table)")
	cmd.Flags().StringVar(&verifyExpect, "expect", "",
		"JSON object of expected values; each passes if at least one copy matches")
	rootCmd.AddCommand(cmd)
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check cross-copy consistency of offset-table fields",
		Long: `The verify command decodes every copy of the offset-table fields and
reports copies that disagree. With --expect it additionally checks each
field against a desired value, passing when at least one copy matches.
Version trailer fields are excluded from the comparison.

Example:
  jsbctl verify physical_constraints.jsb
  jsbctl verify physical_constraints.jsb --expect new_values.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args[0])
		},
	}
}

func runVerify(path string) error {
	table, err := resolveTable(verifyTableFile)
	if err != nil {
		return err
	}

	c, err := jsb.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	copies, err := c.DecodeOccurrences(table, nil)
	if err != nil {
		return err
	}

	diffs := verify.CompareCopies(copies, jsb.VersionKeys)
	for _, d := range diffs {
		slog.Error("copies diverge", "diff", d.String())
	}

	var fails []verify.Diff
	if verifyExpect != "" {
		raw, err := os.ReadFile(verifyExpect)
		if err != nil {
			return err
		}
		var want map[string]int64
		if err := json.Unmarshal(raw, &want); err != nil {
			return fmt.Errorf("parse %s: %w", verifyExpect, err)
		}
		w, f := verify.CheckExpected(copies, want)
		logWarnings(w)
		fails = f
		for _, d := range fails {
			slog.Error("no copy matches expected value", "field", d.Field, "diff", d.String())
		}
	}

	if len(diffs) > 0 || len(fails) > 0 {
		return fmt.Errorf("verification failed: %d divergent, %d mismatched", len(diffs), len(fails))
	}
	printInfo("verification passed: %d fields across %d copies\n", len(table), len(copies))
	return nil
}
