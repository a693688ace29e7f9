package util

import (
	"fmt"
	"strings"

	"github.com/pmd-l10n/pmd-po-helper/config"
	log "github.com/sirupsen/logrus"
)

// CatalogOptions are the settings shared by the catalog commands, merged
// from the config file and the command line.
type CatalogOptions struct {
	StorageMode StorageMode
	Unique      []string
	Encoding    string
	SkipFiles   []string
}

// NewCatalogOptions overlays command line settings on cfg. Unique phrases
// from the command line are added to the configured ones; an empty
// storageMode or encoding keeps the configured value.
func NewCatalogOptions(cfg *config.Config, unique []string, storageMode, encoding string) (*CatalogOptions, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if storageMode == "" {
		storageMode = cfg.StorageMode
	}
	if storageMode == "" {
		storageMode = string(StorageFile)
	}
	mode, err := ParseStorageMode(storageMode)
	if err != nil {
		return nil, err
	}
	if encoding == "" {
		encoding = cfg.Encoding
	}

	opts := &CatalogOptions{
		StorageMode: mode,
		Encoding:    encoding,
		SkipFiles:   cfg.SkipFiles,
	}
	opts.Unique = append(opts.Unique, cfg.Unique...)
	for _, phrase := range unique {
		if phrase == "" {
			continue
		}
		// a blank phrase would match almost every message
		if strings.TrimSpace(phrase) == "" {
			return nil, fmt.Errorf("unique phrase %q is blank", phrase)
		}
		opts.Unique = append(opts.Unique, phrase)
	}
	return opts, nil
}

// Storage returns the catalog storage for opts on the real filesystem.
func (v *CatalogOptions) Storage() *CatalogStorage {
	return NewCatalogStorage(v.StorageMode, v.Unique, v.Encoding)
}

// CmdToPot reads the entries of source and saves them as catalog(s) to output.
func CmdToPot(source EntrySource, storage *CatalogStorage, output string) error {
	entries, err := source.ReadEntries()
	if err != nil {
		return fmt.Errorf("can't read messages: %w", err)
	}
	if len(entries) == 0 {
		log.Warnf("no messages found, the catalog will be empty")
	}
	if err := storage.Write(output, entries); err != nil {
		return fmt.Errorf("can't write the result file: %w", err)
	}
	log.Infof("wrote %d messages from %d resources to %s",
		len(entries), countSourceFiles(entries), output)
	return nil
}

// CmdFromPo parses the catalog(s) at input and hands the translated
// entries to sink. Warnings are reported but do not stop the conversion.
func CmdFromPo(storage *CatalogStorage, input string, sink EntrySink) error {
	entries, warnings, err := storage.Read(input)
	ReportWarnings(warnings)
	if err != nil {
		return fmt.Errorf("can't parse the catalog: %w", err)
	}
	if err := sink.WriteEntries(entries); err != nil {
		return fmt.Errorf("can't write the translated messages: %w", err)
	}
	log.Infof("wrote %d translated messages for %d resources",
		len(entries), countSourceFiles(entries))
	return nil
}

// CmdCheckPo parses each catalog and reports its problems. Returns false
// if any catalog is corrupted.
func CmdCheckPo(storage *CatalogStorage, inputs ...string) bool {
	ok := true
	for _, input := range inputs {
		entries, warnings, err := storage.Read(input)
		ReportWarnings(warnings)
		if err != nil {
			log.Errorf("%v", err)
			ok = false
			continue
		}
		if len(warnings) > 0 {
			log.Warnf("%s: %d entries, %d warnings", input, len(entries), len(warnings))
		} else {
			log.Infof("%s: %d entries", input, len(entries))
		}
	}
	return ok
}

// ReportWarnings logs non fatal catalog warnings.
func ReportWarnings(warnings []PoWarning) {
	for _, w := range warnings {
		log.Warnf("non fatal warning: %s", w)
	}
}

func countSourceFiles(entries []*Entry) int {
	files := make(map[string]bool)
	for _, entry := range entries {
		files[entry.SourceFile] = true
	}
	return len(files)
}
