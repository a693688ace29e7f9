// Package util provides the catalog codec and the file layers around it.
package util

// Entry is one string extracted from a message resource.
type Entry struct {
	// Text is the translatable content.
	Text string
	// Hash identifies the string slot inside SourceFile.
	Hash uint32
	// Unk is an opaque tag stored next to the hash, passed through unchanged.
	Unk uint32
	// SourceFile is the name of the message resource the string comes from.
	SourceFile string
}

// NewEntry creates an entry.
func NewEntry(text string, hash, unk uint32, sourceFile string) *Entry {
	return &Entry{
		Text:       text,
		Hash:       hash,
		Unk:        unk,
		SourceFile: sourceFile,
	}
}

// Location is the "<source_file> <hash> <unk>" triple carried by a "#." comment.
type Location struct {
	SourceFile string
	Hash       uint32
	Unk        uint32
}

// CatalogRecord is one msgid block of a catalog with all its locations.
type CatalogRecord struct {
	MsgID  string
	MsgStr string
	// Translated is false when msgstr was empty and defaulted to msgid.
	Translated bool
	// Disambiguated is true when msgid carried the unique marker.
	Disambiguated bool
	Locations     []Location
	// Line is the 1-based line where the record starts.
	Line int
}

// Entries expands the record into one entry per location.
func (r *CatalogRecord) Entries() []*Entry {
	entries := make([]*Entry, 0, len(r.Locations))
	for _, loc := range r.Locations {
		entries = append(entries, NewEntry(r.MsgStr, loc.Hash, loc.Unk, loc.SourceFile))
	}
	return entries
}
