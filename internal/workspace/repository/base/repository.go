package baserepo

import (
	"bytes"
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/aiperson/internal/workspace"
	meta "github.com/viant/aiperson/internal/workspace/service/meta"
)

// Repository generic CRUD for YAML/JSON resources stored in one directory,
// one file per resource named <name><ext>.
type Repository[T any] struct {
	fs   afs.Service
	meta *meta.Service
	ext  string
}

// New constructs a repository for a specific workspace kind (e.g. "personas").
func New[T any](fs afs.Service, kind, ext string) *Repository[T] {
	return NewWithDir[T](fs, workspace.Path(kind), ext)
}

// NewWithDir constructs a repository rooted at dir (path or URL).
func NewWithDir[T any](fs afs.Service, dir, ext string) *Repository[T] {
	if ext == "" {
		ext = ".yaml"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Repository[T]{fs: fs, meta: meta.New(fs, dir, ext), ext: ext}
}

// Filename resolves name to an absolute path with the repository extension.
func (r *Repository[T]) Filename(name string) string {
	return r.meta.GetURL(name + r.ext)
}

// List basenames (without extension), sorted. A missing directory is empty.
func (r *Repository[T]) List(ctx context.Context) ([]string, error) {
	URLs, err := r.meta.List(ctx, "")
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(URLs))
	for _, URL := range URLs {
		base := filepath.Base(URL)
		res = append(res, base[:len(base)-len(filepath.Ext(base))])
	}
	sort.Strings(res)
	return res, nil
}

// Exists reports whether a resource file exists.
func (r *Repository[T]) Exists(ctx context.Context, name string) (bool, error) {
	return r.fs.Exists(ctx, r.Filename(name))
}

// GetRaw downloads raw bytes.
func (r *Repository[T]) GetRaw(ctx context.Context, name string) ([]byte, error) {
	return r.fs.DownloadWithURL(ctx, r.Filename(name))
}

// Load unmarshals YAML/JSON into *T.
func (r *Repository[T]) Load(ctx context.Context, name string) (*T, error) {
	var v T
	if err := r.meta.Load(ctx, r.Filename(name), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Save (Add/overwrite) marshals struct by the repository extension.
func (r *Repository[T]) Save(ctx context.Context, name string, obj *T) error {
	data, err := meta.Marshal(r.ext, obj)
	if err != nil {
		return err
	}
	return r.Add(ctx, name, data)
}

// Add uploads raw data.
func (r *Repository[T]) Add(ctx context.Context, name string, data []byte) error {
	return r.fs.Upload(ctx, r.Filename(name), file.DefaultFileOsMode, bytes.NewReader(data))
}

// Delete removes file.
func (r *Repository[T]) Delete(ctx context.Context, name string) error {
	return r.fs.Delete(ctx, r.Filename(name))
}
