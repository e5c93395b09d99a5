package configloader

import (
	"context"
	"os"
	"path/filepath"
)

// Well-known configuration file names.
const (
	checkstyleFileName   = "checkstyle.xml"
	overlayFileName      = "javalint.yaml"
	suppressionsFileName = "suppressions.xml"
)

// envConfigPath is the environment variable naming an explicit config file.
const envConfigPath = "JAVALINT_CONFIG"

// ConfigPaths contains discovered configuration file paths.
// Empty fields mean the file was not found.
type ConfigPaths struct {
	// Checkstyle is the checkstyle.xml path.
	Checkstyle string

	// Suppressions is a suppressions.xml found next to the config file.
	Suppressions string

	// Overlay is the javalint.yaml path.
	Overlay string
}

// DiscoverPaths locates configuration files for the given working directory.
// checkstyle.xml is searched upward from workDir to the filesystem root;
// suppressions.xml and javalint.yaml are looked up next to the config file
// and in workDir itself.
func DiscoverPaths(_ context.Context, workDir string) (*ConfigPaths, error) {
	paths := &ConfigPaths{}

	if envPath := os.Getenv(envConfigPath); envPath != "" {
		if fileExists(envPath) {
			paths.Checkstyle = envPath
		}
	}

	if paths.Checkstyle == "" {
		paths.Checkstyle = findUpward(workDir, checkstyleFileName)
	}

	// Companion files live next to the config file when one was found,
	// otherwise next to the sources.
	searchDirs := []string{workDir}
	if paths.Checkstyle != "" {
		searchDirs = []string{filepath.Dir(paths.Checkstyle), workDir}
	}

	paths.Suppressions = findInDirs(searchDirs, suppressionsFileName)
	paths.Overlay = findInDirs(searchDirs, overlayFileName)

	return paths, nil
}

// findUpward searches for name in dir and each of its parents.
// Returns the empty string when nothing is found.
func findUpward(dir, name string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// findInDirs returns the first existing name within dirs.
func findInDirs(dirs []string, name string) string {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
