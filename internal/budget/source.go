package budget

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Source provides the raw catalog resource for a user.
//
// Implementations must return an error wrapping fs.ErrNotExist when the
// user has no catalog.
type Source interface {
	Open(ctx context.Context, userKey string) (io.ReadCloser, error)
}

// FSSource reads catalogs named "<userKey>.json" from a file system.
type FSSource struct {
	FS fs.FS
}

// NewDirSource returns a Source reading catalogs from the directory dir.
func NewDirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

// Open opens the catalog of the user.
//
// Keys that do not form a valid file name, e.g. "../admin", are reported
// as not existing.
func (s FSSource) Open(_ context.Context, userKey string) (io.ReadCloser, error) {
	name := userKey + ".json"
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %s", fs.ErrNotExist, name)
	}

	return s.FS.Open(name)
}
