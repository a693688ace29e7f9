package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/hashicorp/go-multierror"
	log "github.com/sirupsen/logrus"
	"github.com/twpayne/go-vfs"
)

// MessageDumpExt is the extension of message dump files.
const MessageDumpExt = ".json"

// EntrySource provides the entries extracted from message resources.
type EntrySource interface {
	ReadEntries() ([]*Entry, error)
}

// EntrySink receives translated entries to be injected into message resources.
type EntrySink interface {
	WriteEntries(entries []*Entry) error
}

// MessageDump is the JSON form of one message resource, as exchanged with
// the tools reading and writing the binary message files.
type MessageDump struct {
	SourceFile string          `json:"source_file"`
	Messages   []DumpedMessage `json:"messages"`
}

// DumpedMessage is one string of a MessageDump.
type DumpedMessage struct {
	Hash uint32 `json:"hash"`
	Unk  uint32 `json:"unk"`
	Text string `json:"text"`
}

// MessageDumpDir is a directory with one "<source_file>.json" dump per
// message resource. It is both an EntrySource and an EntrySink.
type MessageDumpDir struct {
	FS  vfs.FS
	Dir string
	// SkipFiles lists source files which are not text, such as name_sort.bin.
	SkipFiles []string
}

// NewMessageDumpDir creates a message dump directory on the real filesystem.
func NewMessageDumpDir(dir string, skipFiles []string) *MessageDumpDir {
	return &MessageDumpDir{
		FS:        vfs.OSFS,
		Dir:       dir,
		SkipFiles: skipFiles,
	}
}

func (v *MessageDumpDir) skipped(name string) bool {
	for _, skip := range v.SkipFiles {
		if name == skip || strings.TrimSuffix(name, MessageDumpExt) == skip {
			return true
		}
	}
	return false
}

// ReadEntries implements EntrySource. Dumps are read in file name order.
func (v *MessageDumpDir) ReadEntries() ([]*Entry, error) {
	if !IsDir(v.FS, v.Dir) {
		return nil, fmt.Errorf("message directory %s does not exist", v.Dir)
	}
	infos, err := v.FS.ReadDir(v.Dir)
	if err != nil {
		return nil, fmt.Errorf("can't list files in the message directory %s: %w", v.Dir, err)
	}
	var names []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || filepath.Ext(name) != MessageDumpExt {
			continue
		}
		if v.skipped(name) {
			log.Debugf("skip message dump %s", name)
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		entries []*Entry
		errs    error
	)
	for _, name := range names {
		filename := filepath.Join(v.Dir, name)
		data, err := v.FS.ReadFile(filename)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("can't read %s: %w", filename, err))
			continue
		}
		dump, err := ParseMessageDump(data)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", filename, err))
			continue
		}
		sourceFile := dump.SourceFile
		if sourceFile == "" {
			sourceFile = strings.TrimSuffix(name, MessageDumpExt)
		}
		if err := checkSourceFile(sourceFile); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", filename, err))
			continue
		}
		for _, m := range dump.Messages {
			entries = append(entries, NewEntry(m.Text, m.Hash, m.Unk, sourceFile))
		}
		log.Debugf("read %d messages from %s", len(dump.Messages), filename)
	}
	if errs != nil {
		return nil, errs
	}
	return entries, nil
}

// checkSourceFile rejects names which can not be used as a file name in the
// dump directory, or as the first field of a "#." location comment.
func checkSourceFile(name string) error {
	if name == "" || filepath.Base(name) != name || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("invalid source file name %q", name)
	}
	return nil
}

// WriteEntries implements EntrySink. Entries are grouped by source file and
// sorted by hash. When a (source file, hash) pair is given more than once
// the last entry wins.
func (v *MessageDumpDir) WriteEntries(entries []*Entry) error {
	dumps := make(map[string]*MessageDump)
	seen := make(map[string]map[uint32]int)
	for _, entry := range entries {
		dump, ok := dumps[entry.SourceFile]
		if !ok {
			if err := checkSourceFile(entry.SourceFile); err != nil {
				return fmt.Errorf("%w for hash %d", err, entry.Hash)
			}
			dump = &MessageDump{SourceFile: entry.SourceFile}
			dumps[entry.SourceFile] = dump
			seen[entry.SourceFile] = make(map[uint32]int)
		}
		message := DumpedMessage{Hash: entry.Hash, Unk: entry.Unk, Text: entry.Text}
		if i, ok := seen[entry.SourceFile][entry.Hash]; ok {
			log.Warnf("%s: hash %d is translated more than once, keep the last one",
				entry.SourceFile, entry.Hash)
			dump.Messages[i] = message
			continue
		}
		seen[entry.SourceFile][entry.Hash] = len(dump.Messages)
		dump.Messages = append(dump.Messages, message)
	}

	if err := vfs.MkdirAll(v.FS, v.Dir, 0755); err != nil {
		return fmt.Errorf("can't create the message directory %s: %w", v.Dir, err)
	}
	names := make([]string, 0, len(dumps))
	for name := range dumps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		dump := dumps[name]
		sort.SliceStable(dump.Messages, func(i, j int) bool {
			return dump.Messages[i].Hash < dump.Messages[j].Hash
		})
		data, err := EncodeMessageDump(dump)
		if err != nil {
			return err
		}
		filename := filepath.Join(v.Dir, name+MessageDumpExt)
		if err := v.FS.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("can't write %s: %w", filename, err)
		}
		log.Debugf("wrote %d messages to %s", len(dump.Messages), filename)
	}
	return nil
}

// EncodeMessageDump encodes dump as indented JSON.
func EncodeMessageDump(dump *MessageDump) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dump); err != nil {
		return nil, fmt.Errorf("encode message dump: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseMessageDump decodes a message dump. Dumps with a JSON syntax error
// are repaired when possible: a leading BOM is dropped and gjson reads what
// is left of a truncated dump.
func ParseMessageDump(data []byte) (*MessageDump, error) {
	var dump MessageDump

	err := json.Unmarshal(data, &dump)
	if err == nil {
		return &dump, nil
	}
	if _, ok := err.(*json.SyntaxError); !ok {
		return nil, fmt.Errorf("decode message dump: %w", err)
	}
	return repairMessageDump(data, err)
}
