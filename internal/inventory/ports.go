package inventory

import (
	"context"

	"github.com/FiliRodrigues/Araras/internal/core"
)

// Ports for inventory source adapters.
type (
	// Loader reads the raw inventory rows from one source and returns
	// the cleaned dataset. Implementations must validate the source
	// schema and apply core.Clean before returning.
	Loader interface {
		// SourceID identifies the source (path, spreadsheet id, DSN)
		// and keys the dataset cache.
		SourceID() string
		Load(ctx context.Context) (core.Dataset, error)
	}

	// Replacer swaps the full contents of a writable source. Used by
	// the import tool to materialize a dataset into sqlite.
	Replacer interface {
		Replace(ctx context.Context, ds core.Dataset) error
	}
)
