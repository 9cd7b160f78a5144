package main

import (
	"context"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Aleph-Alpha/geoloc/v1/geoindex"
	"github.com/Aleph-Alpha/geoloc/v1/logger"
)

var (
	importInput string
	importKey   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Repair, sanitize and import location records into the geo index",
	Long:  "Loads a JSON array or CSV file (local path or s3://bucket/key), repairs split records, sanitizes coordinates and text, clears the index key and rebuilds it batch by batch.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		input := importInput
		if input == "" {
			input = cfg.Input.Location
		}
		if input == "" {
			return eris.New("input location is required (--input or GEOLOC_INPUT_LOCATION)")
		}
		key := importKey
		if key == "" {
			key = cfg.Index.Key
		}

		var (
			pipeline *geoindex.Pipeline
			log      *logger.Logger
		)
		return runApp(cmd.Context(), func(ctx context.Context) error {
			result, err := pipeline.Run(ctx, key, input)
			if err != nil {
				return eris.Wrapf(err, "import %s", input)
			}
			log.Info("Import complete", nil, map[string]interface{}{
				"run_id":         result.RunID,
				"index":          result.IndexKey,
				"processed":      result.Processed,
				"imported":       result.Imported,
				"skipped":        result.Skipped,
				"batches":        result.Batches,
				"failed_batches": result.FailedBatches,
				"duration_ms":    result.Duration.Milliseconds(),
			})
			return printJSON(cmd.OutOrStdout(), result)
		}, &pipeline, &log)
	},
}

func init() {
	importCmd.Flags().StringVar(&importInput, "input", "", "path or s3://bucket/key of the records to import (default from config)")
	importCmd.Flags().StringVar(&importKey, "key", "", "geo index key (default from config)")
	rootCmd.AddCommand(importCmd)
}
