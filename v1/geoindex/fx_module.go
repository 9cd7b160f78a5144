package geoindex

import "go.uber.org/fx"

// FXModule provides the Importer, Searcher, Inspector and Pipeline.
//
// It expects a Config, a Store, a Logger and a RecordLoader to be provided;
// a Recorder is optional.
//
// Usage:
//
//	app := fx.New(
//	    geoindex.FXModule,
//	    fx.Supply(geoindex.Config{IndexKey: "all_locations"}),
//	    fx.Provide(func(c *redis.RedisClient) geoindex.Store { return c }),
//	    // logger and loader providers...
//	)
var FXModule = fx.Module("geoindex",
	fx.Provide(
		NewImporterWithDI,
		NewSearcherWithDI,
		NewInspector,
		NewPipeline,
	),
)

// Params groups the dependencies shared by the importer and the searcher.
type Params struct {
	fx.In

	Config   Config
	Store    Store
	Logger   Logger
	Recorder Recorder `optional:"true"`
}

// NewImporterWithDI creates an Importer using dependency injection.
func NewImporterWithDI(p Params) *Importer {
	return NewImporter(p.Store, p.Logger, p.Recorder, p.Config)
}

// NewSearcherWithDI creates a Searcher using dependency injection.
func NewSearcherWithDI(p Params) *Searcher {
	return NewSearcher(p.Store, p.Logger, p.Recorder, p.Config)
}
