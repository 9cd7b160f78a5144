package source

import "go.uber.org/fx"

// FXModule provides a *Loader. An ObjectGetter is picked up when one is
// provided, otherwise only local files can be loaded.
var FXModule = fx.Module("source",
	fx.Provide(NewLoaderWithDI),
)

// LoaderParams groups the dependencies needed to create a Loader.
type LoaderParams struct {
	fx.In

	Objects ObjectGetter `optional:"true"`
	Logger  Logger       `optional:"true"`
}

// NewLoaderWithDI creates a Loader using dependency injection.
func NewLoaderWithDI(params LoaderParams) *Loader {
	return NewLoader(params.Objects, params.Logger)
}
