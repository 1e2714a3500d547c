package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/viant/afs"
)

const (
	// envKey is the environment variable used to override the default workspace root.
	envKey = "AIPERSON_WORKSPACE"

	// defaultRootDir is used when the env variable is not defined.
	defaultRootDir = ".aiperson"
)

var (
	mu sync.Mutex
	// cachedRoot holds the resolved, absolute path to the workspace root.
	cachedRoot string
	// defaultsByRoot guards default bootstrapping so it runs once per root.
	defaultsByRoot = map[string]bool{}
)

// Predefined kinds, each a sub-folder of the root.
const (
	KindPersona      = "personas"
	KindModel        = "models"
	KindConversation = "conversations"
)

// Root returns the absolute path to the workspace directory.
// The lookup order is:
//  1. a root set with SetRoot
//  2. $AIPERSON_WORKSPACE environment variable, if set and non-empty
//  3. ./.aiperson in the current working directory
func Root() string {
	mu.Lock()
	defer mu.Unlock()
	if cachedRoot != "" {
		return cachedRoot
	}
	if env := os.Getenv(envKey); strings.TrimSpace(env) != "" {
		cachedRoot = abs(expandUserHome(env))
	} else if wd, err := os.Getwd(); err == nil {
		cachedRoot = abs(filepath.Join(wd, defaultRootDir))
	} else {
		cachedRoot = abs(defaultRootDir)
	}
	_ = os.MkdirAll(cachedRoot, 0755)
	return cachedRoot
}

// SetRoot overrides the workspace root for this process.
func SetRoot(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	cachedRoot = abs(expandUserHome(path))
	_ = os.MkdirAll(cachedRoot, 0755)
}

// Path returns a sub-path under the root for the given kind (e.g. "personas").
func Path(kind string) string {
	dir := filepath.Join(Root(), kind)
	_ = os.MkdirAll(dir, 0755) // ensure directory exists
	return dir
}

// Resolve returns location when set, otherwise the workspace path of kind.
// Relative locations are taken relative to the workspace root; URLs with a
// scheme are returned unchanged.
func Resolve(location, kind string) string {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return Path(kind)
	case strings.Contains(location, "://"):
		return location
	case filepath.IsAbs(location):
		return filepath.Clean(location)
	}
	location = expandUserHome(location)
	if filepath.IsAbs(location) {
		return location
	}
	return filepath.Join(Root(), location)
}

// EnsureDefaults writes the baseline files of a workspace when they are
// missing. It runs at most once per root.
func EnsureDefaults(fs afs.Service) {
	root := Root()
	mu.Lock()
	if defaultsByRoot[root] {
		mu.Unlock()
		return
	}
	defaultsByRoot[root] = true
	mu.Unlock()
	EnsureDefaultAt(context.Background(), fs, root)
}

func expandUserHome(v string) string {
	trimmed := strings.TrimSpace(v)
	if !(strings.HasPrefix(trimmed, "~/") || trimmed == "~") {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return v
	}
	return filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
}

// abs converts p into an absolute, clean path. If an error occurs it returns p
// unchanged: the caller tolerates relative paths.
func abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	if absPath, err := filepath.Abs(p); err == nil {
		return absPath
	}
	return filepath.Clean(p)
}
