package configdoc

import (
	"os"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/moduledoc/internal/foundation/errors"
)

// DefaultResource is the conventional name of the configuration resource.
const DefaultResource = "application.properties"

// Locator finds the configuration resource on an ordered search path, the
// first directory containing it wins.
type Locator struct {
	Resource   string
	SearchPath []string
}

// NewLocator returns a Locator for resource (DefaultResource when empty).
func NewLocator(resource string, searchPath ...string) Locator {
	if resource == "" {
		resource = DefaultResource
	}
	return Locator{Resource: resource, SearchPath: searchPath}
}

// Locate returns the path of the resource. found is false, with a nil error,
// when no directory on the search path holds it.
func (l Locator) Locate() (path string, found bool, err error) {
	for _, dir := range l.SearchPath {
		candidate := filepath.Join(dir, l.Resource)
		info, statErr := os.Stat(candidate)
		switch {
		case statErr == nil && !info.IsDir():
			return candidate, true, nil
		case statErr == nil, os.IsNotExist(statErr):
			continue
		default:
			return "", false, ferrors.IOFailure("stat", candidate, statErr)
		}
	}
	return "", false, nil
}
