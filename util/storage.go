package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/twpayne/go-vfs"
)

// StorageMode selects how a catalog is laid out on disk.
type StorageMode string

// Storage modes.
const (
	// StorageFile keeps every entry in a single catalog file.
	StorageFile StorageMode = "file"
	// StorageFolder writes one catalog per source file into a directory.
	StorageFolder StorageMode = "folder"
)

// CatalogExt is the extension of catalogs written in folder mode.
const CatalogExt = ".po"

// ParseStorageMode validates a storage mode name.
func ParseStorageMode(name string) (StorageMode, error) {
	switch mode := StorageMode(strings.ToLower(name)); mode {
	case StorageFile, StorageFolder:
		return mode, nil
	}
	return "", fmt.Errorf("the storage mode should be either 'file' or 'folder', not '%s'", name)
}

// CatalogFileName returns the name of the catalog holding sourceFile in
// folder mode: the source file name up to its first dot, plus ".po".
func CatalogFileName(sourceFile string) string {
	stem := sourceFile
	if i := strings.Index(stem, "."); i >= 0 {
		stem = stem[:i]
	}
	return stem + CatalogExt
}

// CatalogStorage reads and writes catalogs on a filesystem.
type CatalogStorage struct {
	FS       vfs.FS
	Mode     StorageMode
	Writer   *CatalogWriter
	Encoding string
}

// NewCatalogStorage creates a storage on the real filesystem.
func NewCatalogStorage(mode StorageMode, unique []string, encoding string) *CatalogStorage {
	return &CatalogStorage{
		FS:       vfs.OSFS,
		Mode:     mode,
		Writer:   NewCatalogWriter(unique...),
		Encoding: encoding,
	}
}

// Write saves entries to path, a file or a directory depending on the mode.
func (v *CatalogStorage) Write(path string, entries []*Entry) error {
	if v.Mode != StorageFolder {
		log.Debugf("writing %d entries to catalog %s", len(entries), path)
		if err := v.FS.WriteFile(path, v.Writer.Build(entries), 0644); err != nil {
			return fmt.Errorf("can't write the catalog file %s: %w", path, err)
		}
		return nil
	}

	files := make(map[string][]*Entry)
	for _, entry := range entries {
		name := CatalogFileName(entry.SourceFile)
		files[name] = append(files[name], entry)
	}
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	if err := vfs.MkdirAll(v.FS, path, 0755); err != nil {
		return fmt.Errorf("can't create the catalog folder %s: %w", path, err)
	}
	for _, name := range names {
		filename := filepath.Join(path, name)
		log.Debugf("writing %d entries to catalog %s", len(files[name]), filename)
		if err := v.FS.WriteFile(filename, v.Writer.Build(files[name]), 0644); err != nil {
			return fmt.Errorf("can't write the catalog file %s: %w", filename, err)
		}
	}
	return nil
}

// Read loads the entries stored at path. In folder mode every catalog of
// the directory is read; failures of all files are reported together and
// no entries are returned.
func (v *CatalogStorage) Read(path string) ([]*Entry, []PoWarning, error) {
	if v.Mode != StorageFolder {
		return v.readFile(path)
	}

	infos, err := v.FS.ReadDir(path)
	if err != nil {
		return nil, nil, fmt.Errorf("can't list catalogs in %s: %w", path, err)
	}
	var names []string
	for _, info := range infos {
		if info.IsDir() || !isCatalogFile(info.Name()) {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)

	var (
		entries  []*Entry
		warnings []PoWarning
		errs     error
	)
	for _, name := range names {
		fileEntries, fileWarnings, err := v.readFile(filepath.Join(path, name))
		warnings = append(warnings, fileWarnings...)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		entries = append(entries, fileEntries...)
	}
	if errs != nil {
		return nil, warnings, errs
	}
	return entries, warnings, nil
}

func (v *CatalogStorage) readFile(filename string) ([]*Entry, []PoWarning, error) {
	data, err := v.FS.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("catalog %s does not exist", filename)
		}
		return nil, nil, fmt.Errorf("can't read the catalog %s: %w", filename, err)
	}
	data, err = ConvertToUTF8(data, v.Encoding)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", filename, err)
	}

	entries, warnings, err := ParseCatalog(data)
	fileWarnings := make([]PoWarning, 0, len(warnings))
	for _, w := range warnings {
		fileWarnings = append(fileWarnings, FileWarning{PoWarning: w, File: filename})
	}
	if err != nil {
		return nil, fileWarnings, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debugf("read %d entries from catalog %s", len(entries), filename)
	return entries, fileWarnings, nil
}

func isCatalogFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".po" || ext == ".pot"
}
