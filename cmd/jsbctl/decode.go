package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsbtools/jsbkit/jsb"
	"github.com/jsbtools/jsbkit/jsb/tables"
	"github.com/jsbtools/jsbkit/pkg/types"
)

var (
	decodeSeason      string
	decodeAnchorsFile string
)

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().StringVar(&decodeSeason, "season", "fm24",
		"Embedded anchor set to decode ("+strings.Join(tables.SeasonNames(), ", ")+")")
	cmd.Flags().StringVar(&decodeAnchorsFile, "anchors", "",
		"YAML file of anchor sets (overrides the embedded sets)")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode an anchored season record to JSON",
		Long: `The decode command reads the season sections a set of anchors points
at (expected-score table, coefficient blocks, role lookup, start value,
version record) and prints the record tree as JSON.

Example:
  jsbctl decode player_ratings_data.jsb
  jsbctl decode player_ratings_data.jsb --season fm2302
  jsbctl decode custom.jsb --anchors my_anchors.yaml --season modded`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args[0])
		},
	}
}

func runDecode(path string) error {
	anchors, err := resolveAnchors()
	if err != nil {
		return err
	}

	c, err := jsb.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	slog.Debug("decoding season", "file", path, "season", decodeSeason)
	season, warns, err := c.DecodeSeason(anchors)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	logWarnings(warns)
	return printJSON(season)
}

func resolveAnchors() (types.Anchors, error) {
	if decodeAnchorsFile != "" {
		sets, err := tables.LoadAnchorSets(decodeAnchorsFile)
		if err != nil {
			return types.Anchors{}, err
		}
		a, ok := sets[decodeSeason]
		if !ok {
			return types.Anchors{}, fmt.Errorf("anchor set %q not in %s", decodeSeason, decodeAnchorsFile)
		}
		return a, nil
	}
	a, ok := tables.SeasonAnchors(decodeSeason)
	if !ok {
		return types.Anchors{}, fmt.Errorf("unknown season %q (embedded sets: %s)",
			decodeSeason, strings.Join(tables.SeasonNames(), ", "))
	}
	return a, nil
}
