package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/geoloc/v1/geoindex"
)

var (
	searchLon    float64
	searchLat    float64
	searchRadius float64
	searchLimit  int
	searchKey    string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the locations nearest to a point",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !cmd.Flags().Changed("lon") || !cmd.Flags().Changed("lat") {
			return eris.New("--lon and --lat are required")
		}
		key := searchKey
		if key == "" {
			key = cfg.Index.Key
		}

		var searcher *geoindex.Searcher
		return runApp(cmd.Context(), func(ctx context.Context) error {
			results := searcher.Search(ctx, key, geoindex.Query{
				Longitude: searchLon,
				Latitude:  searchLat,
				RadiusKm:  searchRadius,
				Limit:     searchLimit,
			})
			return printJSON(cmd.OutOrStdout(), results)
		}, &searcher)
	},
}

func init() {
	searchCmd.Flags().Float64Var(&searchLon, "lon", 0, "longitude of the query point (required)")
	searchCmd.Flags().Float64Var(&searchLat, "lat", 0, "latitude of the query point (required)")
	searchCmd.Flags().Float64Var(&searchRadius, "radius", geoindex.DefaultSearchRadiusKm, "search radius in kilometers")
	searchCmd.Flags().IntVar(&searchLimit, "limit", geoindex.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().StringVar(&searchKey, "key", "", "geo index key (default from config)")
	rootCmd.AddCommand(searchCmd)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return eris.Wrap(err, "encode output")
	}
	return nil
}
