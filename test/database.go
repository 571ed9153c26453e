package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// WriteCatalog writes the budget catalog for the user to dir.
func WriteCatalog(t *testing.T, dir, user, catalog string) {
	err := os.WriteFile(filepath.Join(dir, user+".json"), []byte(catalog), 0o600)
	require.Nil(t, err, "budget catalog could not be written")
}
