package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectRoot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	want := filepath.Join(wd, "../../..")
	fi1, err := os.Stat(want)
	require.NoError(t, err)

	root, err := ProjectRoot()
	require.NoError(t, err)

	fi2, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, os.SameFile(fi1, fi2), "ProjectRoot() = %q; want: %q", root, want)

	path, err := modulePath(filepath.Join(root, "go.mod"))
	require.NoError(t, err)
	require.Equal(t, rootModule, path)
}

func TestModulePathErrors(t *testing.T) {
	_, err := modulePath(filepath.Join(t.TempDir(), "go.mod"))
	require.Error(t, err)

	name := filepath.Join(t.TempDir(), "go.mod")
	require.NoError(t, os.WriteFile(name, []byte("// no module directive\n"), 0644))
	_, err = modulePath(name)
	require.Error(t, err)
}
