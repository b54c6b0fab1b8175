package ingest

import (
	"context"
	"path/filepath"
	"testing"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexpath/internal/catalog"
	"lexpath/internal/pathalg"
)

func openTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	file := filepath.Join(t.TempDir(), "catalog.db")
	cat, err := catalog.Open(file, pathalg.Env{Home: "/home/user", WorkingDir: "/work"})
	require.NoError(t, err)
	t.Cleanup(func() { cat.Close() })
	return cat
}

func writeFiles(t *testing.T, fs billy.Filesystem, paths ...string) {
	t.Helper()
	for _, p := range paths {
		require.NoError(t, util.WriteFile(fs, p, []byte("x"), 0o644))
	}
}

func TestRunCatalogsTree(t *testing.T) {
	fs := memfs.New()
	writeFiles(t, fs,
		"/project/a.txt",
		"/project/sub/b.txt",
	)
	cat := openTestCatalog(t)

	result, err := Run(context.Background(), fs, "/project", cat, Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 3, result.Indexed) // a.txt, sub, sub/b.txt

	got, err := cat.Get(context.Background(), "/project/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "/project/sub", got.Parent)
	assert.Equal(t, result.RunID, got.RunID)
}

func TestRunHonorsGitignore(t *testing.T) {
	fs := memfs.New()
	writeFiles(t, fs,
		"/project/keep.txt",
		"/project/build/out.bin",
	)
	require.NoError(t, util.WriteFile(fs, "/project/.gitignore", []byte("build/\n"), 0o644))
	cat := openTestCatalog(t)

	_, err := Run(context.Background(), fs, "/project", cat, Options{Gitignore: true})
	require.NoError(t, err)

	_, err = cat.Get(context.Background(), "/project/keep.txt")
	assert.NoError(t, err)
	_, err = cat.Get(context.Background(), "/project/build/out.bin")
	assert.Error(t, err)
}

func TestRunIncludesOverrideGitignore(t *testing.T) {
	fs := memfs.New()
	writeFiles(t, fs, "/project/build/out.bin")
	require.NoError(t, util.WriteFile(fs, "/project/.gitignore", []byte("build/\n"), 0o644))
	cat := openTestCatalog(t)

	_, err := Run(context.Background(), fs, "/project", cat, Options{
		Gitignore: true,
		Includes:  []string{"build"},
	})
	require.NoError(t, err)

	_, err = cat.Get(context.Background(), "/project/build/out.bin")
	assert.NoError(t, err)
}

func TestRunExcludesBeatIncludes(t *testing.T) {
	fs := memfs.New()
	writeFiles(t, fs, "/project/secret/key.pem", "/project/ok.txt")
	cat := openTestCatalog(t)

	result, err := Run(context.Background(), fs, "/project", cat, Options{
		Includes: []string{"secret"},
		Excludes: []string{"secret"},
	})
	require.NoError(t, err)

	_, err = cat.Get(context.Background(), "/project/secret/key.pem")
	assert.Error(t, err)
	_, err = cat.Get(context.Background(), "/project/ok.txt")
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Skipped) // the secret dir is skipped wholesale
}

func TestBuildFileFilterScopedGitignore(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/p/sub/.gitignore", []byte("*.log\n"), 0o644))
	writeFiles(t, fs, "/p/top.log", "/p/sub/deep.log")

	filter := BuildFileFilter(fs, "/p", true, nil, nil)

	// Rules from sub/.gitignore apply only beneath sub.
	assert.True(t, filter("top.log", false))
	assert.False(t, filter("sub/deep.log", false))
}
