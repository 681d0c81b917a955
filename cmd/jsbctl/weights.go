package main

import (
	"github.com/spf13/cobra"

	"github.com/jsbtools/jsbkit/jsb"
)

var weightPrefixes []string

func init() {
	cmd := newWeightsCmd()
	cmd.Flags().StringSliceVar(&weightPrefixes, "prefix", nil,
		"Key prefixes to scan for (default: the known weight families)")
	rootCmd.AddCommand(cmd)
}

func newWeightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "weights <file>",
		Short: "Prefix-scan a weights container to JSON",
		Long: `The weights command recovers flat prefixed keys from containers whose
nesting cannot be walked structurally, and groups them into
version-delimited packs.

Example:
  jsbctl weights weights.jsb
  jsbctl weights weights.jsb --prefix "MY_PREFIX_"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWeights(args[0])
		},
	}
}

func runWeights(path string) error {
	c, err := jsb.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()

	packs, err := c.DecodeWeights(weightPrefixes)
	if err != nil {
		return err
	}
	return printJSON(packs)
}
