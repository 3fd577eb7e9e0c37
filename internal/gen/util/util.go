// Package util locates the repository root from within the nested
// generator module.
package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// rootModule is the module the generated tables belong to.
const rootModule = "github.com/charlievieth/titlecase"

func modulePath(name string) (string, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	file, err := modfile.Parse(name, data, nil)
	if err != nil {
		return "", err
	}
	if file.Module == nil || file.Module.Mod.Path == "" {
		return "", errors.New("util: missing module path: " + name)
	}
	return file.Module.Mod.Path, nil
}

// ProjectRoot walks up from the working directory to the directory whose
// go.mod declares the root module.
func ProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	dir := filepath.Clean(wd)
	for {
		name := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(name); err == nil {
			path, err := modulePath(name)
			if err != nil {
				return "", err
			}
			if path == rootModule {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if len(parent) >= len(dir) {
			return "", fmt.Errorf("util: no go.mod for module %q at or above %q",
				rootModule, wd)
		}
		dir = parent
	}
}
