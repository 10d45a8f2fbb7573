package dashboard

import (
	"github.com/Veraticus/sprout/internal/model"
)

// Locator defines the contract for finding the readings file.
type Locator interface {
	Locate() (string, error)
}

// Loader defines the contract for turning a path into a dataset.
type Loader interface {
	Load(path string) (*model.Dataset, error)
	// Reload bypasses any cached dataset for path.
	Reload(path string) (*model.Dataset, error)
}
