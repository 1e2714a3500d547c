package baserepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

type item struct {
	ID    string `json:"id" yaml:"id"`
	Count int    `json:"count" yaml:"count"`
}

func TestRepository_List_FiltersInvalidEntries(t *testing.T) {
	type testCase struct {
		name     string
		ext      string
		setup    func(dir string) error
		expected []string
	}

	cases := []testCase{
		{
			name: "json files only",
			ext:  ".json",
			setup: func(dir string) error {
				for _, name := range []string{"zed.json", "alice.json", "ignore.txt", "ROLES", "other.yaml"} {
					if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
						return err
					}
				}
				return os.MkdirAll(filepath.Join(dir, "nested.json"), 0755)
			},
			expected: []string{"alice", "zed"},
		},
		{
			name:     "empty directory",
			ext:      ".json",
			setup:    func(dir string) error { return nil },
			expected: []string{},
		},
	}

	ctx := context.Background()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, tc.setup(dir))
			repo := NewWithDir[item](afs.New(), dir, tc.ext)
			got, err := repo.List(ctx)
			assert.NoError(t, err)
			assert.EqualValues(t, tc.expected, got)
		})
	}
}

func TestRepository_List_MissingDirectory(t *testing.T) {
	repo := NewWithDir[item](afs.New(), filepath.Join(t.TempDir(), "absent"), "json")
	got, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestRepository_CRUD(t *testing.T) {
	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			ctx := context.Background()
			dir := t.TempDir()
			repo := NewWithDir[item](afs.New(), dir, ext)

			require.NoError(t, repo.Save(ctx, "one", &item{ID: "one", Count: 3}))
			assert.FileExists(t, filepath.Join(dir, "one"+ext))

			ok, err := repo.Exists(ctx, "one")
			require.NoError(t, err)
			assert.True(t, ok)

			loaded, err := repo.Load(ctx, "one")
			require.NoError(t, err)
			assert.EqualValues(t, &item{ID: "one", Count: 3}, loaded)

			require.NoError(t, repo.Delete(ctx, "one"))
			ok, _ = repo.Exists(ctx, "one")
			assert.False(t, ok)
		})
	}
}
