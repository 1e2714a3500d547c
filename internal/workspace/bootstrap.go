package workspace

import (
	"bytes"
	"context"
	"embed"
	"fmt"

	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

//go:embed default/*
var defaultsFS embed.FS

const ConfigFile = "config.yaml"

// DefaultConfig returns the embedded default configuration document.
func DefaultConfig() []byte {
	data, _ := defaultsFS.ReadFile("default/" + ConfigFile)
	return data
}

// EnsureDefaultAt writes config.yaml and creates the kind folders under root
// when they are missing. Existing files are never overwritten.
func EnsureDefaultAt(ctx context.Context, fs afs.Service, root string) {
	entries := []struct {
		path string // relative to workspace root
		src  string // path inside embed FS default/
	}{
		{ConfigFile, "default/" + ConfigFile},
	}

	baseURL := url.Normalize(root, file.Scheme)
	for _, kind := range []string{KindPersona, KindModel, KindConversation} {
		_ = fs.Create(ctx, url.Join(baseURL, kind), file.DefaultDirOsMode, true)
	}
	for _, e := range entries {
		absPath := url.Join(baseURL, e.path)
		if ok, _ := fs.Exists(ctx, absPath); ok {
			continue
		}
		data, err := fs.DownloadWithURL(ctx, url.Join("embed://localhost/", e.src), &defaultsFS)
		if err != nil {
			fmt.Printf("failed to download %v: %v\n", e.src, err)
			continue
		}
		_ = fs.Upload(ctx, absPath, file.DefaultFileOsMode, bytes.NewReader(data))
	}
}
