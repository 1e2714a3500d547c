package meta

import (
	"context"
	"encoding/json"
	"path"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"gopkg.in/yaml.v3"
)

// Service provides minimal meta loading and listing with a base directory.
type Service struct {
	fs   afs.Service
	base string
	exts []string
}

// New constructs a meta Service with the given filesystem and base directory/URL.
// When no extensions are given, .yaml and .yml files are listed.
func New(fs afs.Service, base string, exts ...string) *Service {
	if len(exts) == 0 {
		exts = []string{".yaml", ".yml"}
	}
	for i, ext := range exts {
		exts[i] = strings.ToLower(ext)
	}
	return &Service{fs: fs, base: base, exts: exts}
}

// resolve joins base with a relative path, otherwise returns the path as-is.
func (s *Service) resolve(p string) string {
	if p == "" {
		return s.base
	}
	if strings.Contains(p, "://") || filepath.IsAbs(p) {
		return p
	}
	if strings.TrimSpace(s.base) == "" {
		return p
	}
	// When base is a URL, prefer URL-style join to avoid OS path quirks.
	if strings.Contains(s.base, "://") {
		base := strings.TrimRight(s.base, "/")
		rel := strings.TrimLeft(p, "/")
		return base + "/" + rel
	}
	return filepath.Join(s.base, p)
}

// Matches reports whether name carries one of the listed extensions.
func (s *Service) Matches(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, candidate := range s.exts {
		if ext == candidate {
			return true
		}
	}
	return false
}

// Load reads URL and unmarshals into v, choosing the codec by extension.
func (s *Service) Load(ctx context.Context, URL string, v interface{}) error {
	URL = s.resolve(URL)
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return err
	}
	return Unmarshal(URL, data, v)
}

// Unmarshal decodes data into v by the extension of URL; YAML is the default.
func Unmarshal(URL string, data []byte, v interface{}) error {
	switch strings.ToLower(path.Ext(URL)) {
	case ".json":
		return json.Unmarshal(data, v)
	default:
		return yaml.Unmarshal(data, v)
	}
}

// Marshal encodes v by the extension of URL; YAML is the default.
func Marshal(URL string, v interface{}) ([]byte, error) {
	switch strings.ToLower(path.Ext(URL)) {
	case ".json":
		return json.MarshalIndent(v, "", "    ")
	default:
		return yaml.Marshal(v)
	}
}

// List returns candidates under a directory or the file itself when URL points to a file.
// A missing directory yields an empty list.
func (s *Service) List(ctx context.Context, URL string) ([]string, error) {
	URL = s.resolve(URL)
	if s.Matches(URL) {
		return []string{URL}, nil
	}
	if ok, _ := s.fs.Exists(ctx, URL); !ok {
		return nil, nil
	}
	objs, err := s.fs.List(ctx, URL)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, o := range objs {
		if o.IsDir() {
			continue
		}
		if !s.Matches(o.Name()) {
			continue
		}
		if strings.Contains(URL, "://") {
			out = append(out, url.Join(URL, path.Base(o.Name())))
			continue
		}
		out = append(out, filepath.Join(URL, filepath.Base(o.Name())))
	}
	return out, nil
}

// Exists checks if the resolved URL exists.
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, s.resolve(URL))
}

// GetURL returns the resolved absolute URL/path for a possibly relative path.
func (s *Service) GetURL(p string) string { return s.resolve(p) }
