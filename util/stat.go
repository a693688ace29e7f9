package util

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"
	"github.com/twpayne/go-vfs"
)

// CatalogStats holds statistics for a catalog file.
type CatalogStats struct {
	Records      int // msgid blocks
	Entries      int // "#." locations, one per message slot
	Translated   int // Records with a msgstr different from msgid
	Untranslated int // Records with empty msgstr
	Same         int // Records where msgstr equals msgid (suspect untranslated)
	Unique       int // Records kept apart by a unique phrase
	Warnings     int
	Size         int64
}

// CountCatalogStats reads a catalog and returns its statistics.
func CountCatalogStats(fs vfs.FS, filename, encoding string) (*CatalogStats, error) {
	data, err := fs.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	stats := &CatalogStats{Size: int64(len(data))}

	data, err = ConvertToUTF8(data, encoding)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	records, warnings, err := ParseCatalogRecords(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	stats.Warnings = len(warnings)

	for _, r := range records {
		stats.Records++
		stats.Entries += len(r.Locations)
		switch {
		case !r.Translated:
			stats.Untranslated++
		case r.MsgStr == r.MsgID:
			stats.Same++
		default:
			stats.Translated++
		}
		if r.Disambiguated {
			stats.Unique++
		}
	}
	return stats, nil
}

// FormatStatLine formats stats like "msgfmt --statistics".
func FormatStatLine(stats *CatalogStats) string {
	var parts []string
	if stats.Translated > 0 {
		if stats.Translated == 1 {
			parts = append(parts, "1 translated message")
		} else {
			parts = append(parts, fmt.Sprintf("%d translated messages", stats.Translated))
		}
	}
	if stats.Untranslated > 0 {
		if stats.Untranslated == 1 {
			parts = append(parts, "1 untranslated message")
		} else {
			parts = append(parts, fmt.Sprintf("%d untranslated messages", stats.Untranslated))
		}
	}
	if stats.Same > 0 {
		if stats.Same == 1 {
			parts = append(parts, "1 same message")
		} else {
			parts = append(parts, fmt.Sprintf("%d same messages", stats.Same))
		}
	}
	if len(parts) == 0 {
		return "0 translated messages.\n"
	}
	return strings.Join(parts, ", ") + ".\n"
}

// HumanSize formats the catalog size, such as "12.3kB".
func (v *CatalogStats) HumanSize() string {
	return units.HumanSize(float64(v.Size))
}
