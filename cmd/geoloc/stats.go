package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/geoloc/v1/geoindex"
)

var (
	statsKey    string
	statsSample int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the member count and a sample of ids of a geo index",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key := statsKey
		if key == "" {
			key = cfg.Index.Key
		}

		var inspector *geoindex.Inspector
		return runApp(cmd.Context(), func(ctx context.Context) error {
			stats, err := inspector.Stats(ctx, key, statsSample)
			if err != nil {
				return eris.Wrapf(err, "stats %s", key)
			}
			return printJSON(cmd.OutOrStdout(), stats)
		}, &inspector)
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsKey, "key", "", "geo index key (default from config)")
	statsCmd.Flags().IntVar(&statsSample, "sample", 10, "number of member ids to list")
	rootCmd.AddCommand(statsCmd)
}
