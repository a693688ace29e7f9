package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-vfs/vfst"
)

func newTestFS(t *testing.T, root interface{}) *vfst.TestFS {
	fs, cleanup, err := vfst.NewTestFS(root)
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return fs
}

func TestParseStorageMode(t *testing.T) {
	mode, err := ParseStorageMode("file")
	assert.NoError(t, err)
	assert.Equal(t, StorageFile, mode)

	mode, err = ParseStorageMode("Folder")
	assert.NoError(t, err)
	assert.Equal(t, StorageFolder, mode)

	_, err = ParseStorageMode("zip")
	assert.EqualError(t, err, "the storage mode should be either 'file' or 'folder', not 'zip'")
}

func TestCatalogFileName(t *testing.T) {
	assert.Equal(t, "common.po", CatalogFileName("common.bin"))
	assert.Equal(t, "dungeon.po", CatalogFileName("dungeon.msg.bin"))
	assert.Equal(t, "noext.po", CatalogFileName("noext"))
}

func TestCatalogStorageFileMode(t *testing.T) {
	fs := newTestFS(t, map[string]interface{}{})

	storage := &CatalogStorage{FS: fs, Mode: StorageFile, Writer: NewCatalogWriter()}
	entries := []*Entry{
		NewEntry("Hello", 1, 0, "common.bin"),
		NewEntry("Bye", 2, 0, "dungeon.bin"),
	}
	require.NoError(t, storage.Write("/out.pot", entries))

	data, err := fs.ReadFile("/out.pot")
	require.NoError(t, err)
	assert.Equal(t, NewCatalogWriter().Build(entries), data)

	parsed, warnings, err := storage.Read("/out.pot")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, entries, parsed)
}

func TestCatalogStorageFolderMode(t *testing.T) {
	fs := newTestFS(t, map[string]interface{}{})

	storage := &CatalogStorage{FS: fs, Mode: StorageFolder, Writer: NewCatalogWriter()}
	entries := []*Entry{
		NewEntry("Hello", 1, 0, "dungeon.bin"),
		NewEntry("Hello", 2, 0, "common.bin"),
		NewEntry("Bye", 3, 0, "dungeon.bin"),
	}
	require.NoError(t, storage.Write("/po/sub", entries))

	infos, err := fs.ReadDir("/po/sub")
	require.NoError(t, err)
	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	assert.ElementsMatch(t, []string{"common.po", "dungeon.po"}, names)

	data, err := fs.ReadFile("/po/sub/dungeon.po")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "msgid "))

	parsed, warnings, err := storage.Read("/po/sub")
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.ElementsMatch(t, entries, parsed)
}

func TestCatalogStorageFolderReadCollectsErrors(t *testing.T) {
	fs := newTestFS(t, map[string]interface{}{
		"/po": map[string]interface{}{
			"a.po":      "#. a.bin 1\nmsgid \"x\"\nmsgstr \"\"\n",
			"b.po":      "#. b.bin 1 0\nmsgid \"x\"\nmsgstr \"y\"\n",
			"c.pot":     "msgid \"x\"\nmsgstr \"\"\n",
			"readme.md": "not a catalog",
		},
	})

	storage := &CatalogStorage{FS: fs, Mode: StorageFolder, Writer: NewCatalogWriter()}
	entries, _, err := storage.Read("/po")
	require.Error(t, err)
	assert.Nil(t, entries)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 2)
	assert.True(t, errors.Is(merr.Errors[0], ErrMalformedComment))
	assert.Contains(t, merr.Errors[0].Error(), "/po/a.po")
	assert.True(t, errors.Is(merr.Errors[1], ErrMissingComment))
}

func TestCatalogStorageReadWarnings(t *testing.T) {
	fs := newTestFS(t, map[string]interface{}{
		"/a.po": "#. a.bin 1 0\nfuzzy\nmsgid \"x\"\nmsgstr \"y\"\n",
	})

	storage := &CatalogStorage{FS: fs, Mode: StorageFile, Writer: NewCatalogWriter()}
	entries, warnings, err := storage.Read("/a.po")
	require.NoError(t, err)
	assert.Equal(t, []*Entry{NewEntry("y", 1, 0, "a.bin")}, entries)
	require.Len(t, warnings, 1)
	assert.Equal(t, FileWarning{
		PoWarning: LineTypeUnknown{LineNo: 2, Token: "fuzzy"},
		File:      "/a.po",
	}, warnings[0])
	assert.Equal(t, 2, warnings[0].Line())
}

func TestCatalogStorageReadMissingFile(t *testing.T) {
	fs := newTestFS(t, map[string]interface{}{})

	storage := &CatalogStorage{FS: fs, Mode: StorageFile, Writer: NewCatalogWriter()}
	_, _, err := storage.Read("/missing.po")
	assert.EqualError(t, err, "catalog /missing.po does not exist")
}
