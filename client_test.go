package testfiles_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dicomtk/testfiles"
	"github.com/dicomtk/testfiles/httpsource"
	"github.com/dicomtk/testfiles/registry"
)

func TestNewDefaults(t *testing.T) {
	// Not parallel: pins the base URL environment.
	t.Setenv(httpsource.EnvBaseURL, "https://example.com/data")

	client, err := testfiles.New(testfiles.WithCacheDir(t.TempDir()))
	require.NoError(t, err)

	assert.NotNil(t, client.Registry())
	assert.Positive(t, client.Registry().Len(), "default registry ships a table")
}

func TestNewExplicitConfig(t *testing.T) {
	t.Parallel()

	reg := registry.New()
	dir := filepath.Join(t.TempDir(), "cache")
	client, err := testfiles.New(
		testfiles.WithRegistry(reg),
		testfiles.WithCacheDir(dir),
		testfiles.WithBaseURL("https://example.com/data"),
	)
	require.NoError(t, err)
	assert.Equal(t, dir, client.CacheDir())
	assert.Same(t, reg, client.Registry())
}

func TestDefaultCacheDir(t *testing.T) {
	t.Parallel()

	dir, err := testfiles.DefaultCacheDir()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(dir, "dicom_test_files"),
		"cache dir %q should end in dicom_test_files", dir)
	assert.True(t, filepath.IsAbs(dir))
}
