package util

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// disambiguationMarker separates the text of a unique msgid from the suffix
// keeping it apart from other msgids with the same text.
const disambiguationMarker = "\x00\x1funique\x1f\x00"

// CatalogWriter serializes entries to catalog text.
//
// Entries sharing the same text are merged into one msgid block, unless the
// text contains one of the Unique phrases (case insensitive): such phrases
// may need a different translation for each place they are used in.
type CatalogWriter struct {
	Unique []string
}

// NewCatalogWriter creates a writer with the given unique phrases.
func NewCatalogWriter(unique ...string) *CatalogWriter {
	return &CatalogWriter{Unique: unique}
}

type catalogGroup struct {
	key     string
	entries []*Entry
}

// group merges entries by key, keeping the order of first appearance.
func (v *CatalogWriter) group(entries []*Entry) []*catalogGroup {
	var (
		lower    = cases.Lower(language.Und)
		triggers = make([]string, 0, len(v.Unique))
		groups   []*catalogGroup
		index    = make(map[string]int)
	)

	for _, phrase := range v.Unique {
		if phrase == "" {
			continue
		}
		triggers = append(triggers, lower.String(phrase))
	}

	for _, entry := range entries {
		key := entry.Text
		if len(triggers) > 0 && containsAny(lower.String(entry.Text), triggers) {
			key = entry.Text + disambiguationMarker + entry.SourceFile + " " +
				strconv.FormatUint(uint64(entry.Hash), 10)
		} else if key == " " {
			// a bare " " msgid stands for the empty text
			key += disambiguationMarker
		}
		if i, ok := index[key]; ok {
			groups[i].entries = append(groups[i].entries, entry)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, &catalogGroup{key: key, entries: []*Entry{entry}})
	}
	return groups
}

// Build returns the catalog text for entries.
func (v *CatalogWriter) Build(entries []*Entry) []byte {
	var buf bytes.Buffer

	for _, group := range v.group(entries) {
		for _, entry := range group.entries {
			fmt.Fprintf(&buf, "#. %s %d %d\n", entry.SourceFile, entry.Hash, entry.Unk)
		}
		msgid := group.key
		// msgid "" is the header of gettext catalogs
		if msgid == "" {
			msgid = " "
		}
		buf.WriteString("msgid ")
		buf.WriteString(EscapeCatalogString(msgid))
		buf.WriteString("\nmsgstr \"\"\n\n")
	}
	return buf.Bytes()
}

// Write writes the catalog text for entries to w.
func (v *CatalogWriter) Write(w io.Writer, entries []*Entry) error {
	if _, err := w.Write(v.Build(entries)); err != nil {
		return fmt.Errorf("fail to write catalog: %w", err)
	}
	return nil
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
