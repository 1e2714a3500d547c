package meta

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
)

func TestService_List(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.JSON", "c.yaml", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.json"), 0755))

	testCases := []struct {
		description string
		exts        []string
		location    string
		expected    []string
	}{
		{description: "json only", exts: []string{".json"}, expected: []string{"a.json", "b.JSON"}},
		{description: "yaml default", expected: []string{"c.yaml"}},
		{description: "missing directory", exts: []string{".json"}, location: filepath.Join(dir, "missing"), expected: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			srv := New(afs.New(), dir, tc.exts...)
			got, err := srv.List(context.Background(), tc.location)
			require.NoError(t, err)
			var names []string
			for _, item := range got {
				names = append(names, filepath.Base(item))
			}
			sort.Strings(names)
			assert.EqualValues(t, tc.expected, names)
		})
	}
}

func TestService_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v.json"), []byte(`{"name":"json"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "v.yaml"), []byte("name: yaml\n"), 0644))
	srv := New(afs.New(), dir)

	for _, name := range []string{"json", "yaml"} {
		var v struct {
			Name string `json:"name" yaml:"name"`
		}
		require.NoError(t, srv.Load(context.Background(), "v."+name, &v))
		assert.Equal(t, name, v.Name)
	}
}
