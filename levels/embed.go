package levels

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Load reads a level file by name. A copy on disk under levels/ takes
// precedence over the embedded one so levels can be edited without a
// rebuild (pair with Watcher for live reload).
func Load(name string) ([]byte, error) {
	clean := cleanLevelPath(name)
	if data, err := os.ReadFile(diskLevelPath(clean)); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}

// Names returns the bundled level file names in sorted order.
func Names() []string {
	matches, err := fs.Glob(LevelsFS, "*.yaml")
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

func cleanLevelPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	return strings.TrimPrefix(s, "levels/")
}

func diskLevelPath(clean string) string {
	return filepath.Join("levels", filepath.FromSlash(clean))
}
