package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// Files and directories that mark a vault root.
const (
	SystemDir  = ".knowling"
	ConfigFile = "knowling.yaml"
)

// FindRoot walks up from startDir looking for a vault marker (a .knowling
// directory or a knowling.yaml file) and returns the absolute path of the
// first directory holding one.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, SystemDir) || hasFile(dir, ConfigFile) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("vault root not found from %s", abs)
}

func hasFile(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
