package util

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalogTranslated(t *testing.T) {
	data := `#. a.bin 10 0
#. b.bin 20 3
msgid "Hello"
msgstr "Bonjour"

#. a.bin 11 0
msgid "Bye"
msgstr ""
`
	entries, warnings, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []*Entry{
		NewEntry("Bonjour", 10, 0, "a.bin"),
		NewEntry("Bonjour", 20, 3, "b.bin"),
		NewEntry("Bye", 11, 0, "a.bin"),
	}, entries)
}

func TestParseCatalogContinuationLines(t *testing.T) {
	data := `#. a.bin 1 0
msgid ""
"Hello "
"World"
msgstr ""
"Bonjour "
"le monde"
`
	entries, warnings, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, entries, 1)
	assert.Equal(t, "Bonjour le monde", entries[0].Text)
}

func TestParseCatalogWarnings(t *testing.T) {
	data := `#. a.bin 1 0
msgctxt "menu"
msgid "Hello
msgstr "Hi\\x{41

#. a.bin 2 0
msgid "Path"
msgstr "a\\
"b"
`
	entries, warnings, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []PoWarning{
		LineTypeUnknown{LineNo: 2, Token: "msgctxt"},
		UnclosedQuote{LineNo: 3},
		UnclosedQuote{LineNo: 4},
		UnfinishedEscape{LineNo: 4},
		UnclosedQuote{LineNo: 8},
	}, warnings)
	// a "\\" left open at the end of line 8 is a literal backslash
	assert.Equal(t, []*Entry{
		NewEntry("Hi", 1, 0, "a.bin"),
		NewEntry(`a\b`, 2, 0, "a.bin"),
	}, entries)
}

func TestParseCatalogOrphanContinuation(t *testing.T) {
	data := `"dangling"
#. a.bin 1 0
msgid "Hello"
msgstr ""
`
	entries, warnings, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []PoWarning{LineTypeUnknown{LineNo: 1, Token: `"`}}, warnings)
	assert.Equal(t, []*Entry{NewEntry("Hello", 1, 0, "a.bin")}, entries)
}

func TestParseCatalogFatalErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		data string
		line int
		err  error
	}{
		{
			name: "two tokens comment",
			data: "#. a.bin 1\nmsgid \"x\"\nmsgstr \"\"\n",
			line: 1,
			err:  ErrMalformedComment,
		},
		{
			name: "four tokens comment",
			data: "#. a.bin 1 0 9\nmsgid \"x\"\nmsgstr \"\"\n",
			line: 1,
			err:  ErrMalformedComment,
		},
		{
			name: "hash is not a number",
			data: "#. a.bin 1 0\n#. a.bin abc 0\nmsgid \"x\"\nmsgstr \"\"\n",
			line: 2,
			err:  ErrInvalidNumber,
		},
		{
			name: "hash overflows",
			data: "#. a.bin 4294967296 0\nmsgid \"x\"\nmsgstr \"\"\n",
			line: 1,
			err:  ErrInvalidNumber,
		},
		{
			name: "negative unk",
			data: "#. a.bin 1 -1\nmsgid \"x\"\nmsgstr \"\"\n",
			line: 1,
			err:  ErrInvalidNumber,
		},
		{
			name: "missing comment",
			data: "#. a.bin 1 0\nmsgid \"x\"\nmsgstr \"\"\n\nmsgid \"y\"\nmsgstr \"\"\n",
			line: 5,
			err:  ErrMissingComment,
		},
		{
			name: "malformed escape",
			data: "#. a.bin 1 0\nmsgid \"\\\\x{zz}\"\nmsgstr \"\"\n",
			line: 2,
			err:  ErrMalformedEscape,
		},
		{
			name: "hex escape without brace",
			data: "#. a.bin 1 0\nmsgid \"x\"\nmsgstr \"\\\\x41\"\n",
			line: 3,
			err:  ErrMalformedEscape,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			entries, _, err := ParseCatalog([]byte(tc.data))
			require.Error(t, err)
			assert.Nil(t, entries)
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)

			var catalogErr *CatalogError
			require.True(t, errors.As(err, &catalogErr))
			assert.Equal(t, tc.line, catalogErr.Line)
		})
	}
}

func TestParseCatalogSkipsGettextHeader(t *testing.T) {
	data := `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

#. a.bin 1 0
msgid "Hi"
msgstr "Salut"
`
	entries, warnings, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []*Entry{NewEntry("Salut", 1, 0, "a.bin")}, entries)
}

func TestParseCatalogCRLF(t *testing.T) {
	data := "#. a.bin 1 0\r\nmsgid \"Hi\"\r\nmsgstr \"Yo\\\\r\"\r\n\r\n"
	entries, warnings, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []*Entry{NewEntry("Yo\r", 1, 0, "a.bin")}, entries)
}

func TestParseCatalogCommentSeparators(t *testing.T) {
	data := "#. a.bin\t1   2\nmsgid \"Hi\"\nmsgstr \"\"\n"
	entries, _, err := ParseCatalog([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, []*Entry{NewEntry("Hi", 1, 2, "a.bin")}, entries)
}

func TestParseCatalogEmpty(t *testing.T) {
	entries, warnings, err := ParseCatalog(nil)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Empty(t, entries)
}

func TestParseCatalogRoundTrip(t *testing.T) {
	entries := []*Entry{
		NewEntry("Hello", 1, 0, "a.bin"),
		NewEntry("[VAR PKNAME(0000)] used\r\nTackle!", 2, 7, "a.bin"),
		NewEntry("Hello", 3, 0, "b.bin"),
		NewEntry("", 4, 0, "b.bin"),
		NewEntry("Who are you?", 5, 1, "b.bin"),
		NewEntry("Who are you?", 6, 1, "b.bin"),
		NewEntry("tab\tand \x1b escape", 7, 0, "c.bin"),
		NewEntry(`C:\x\path\`, 8, 0, "c.bin"),
		NewEntry(" ", 9, 0, "c.bin"),
	}
	data := NewCatalogWriter("who").Build(entries)

	parsed, warnings, err := ParseCatalog(data)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.ElementsMatch(t, entries, parsed)
}

func TestParseCatalogRecords(t *testing.T) {
	entries := []*Entry{
		NewEntry("Who?", 1, 0, "a.bin"),
		NewEntry("Who?", 2, 0, "a.bin"),
		NewEntry("Hi", 3, 0, "a.bin"),
	}
	data := string(NewCatalogWriter("who").Build(entries))
	data = strings.Replace(data, "msgid \"Hi\"\nmsgstr \"\"", "msgid \"Hi\"\nmsgstr \"Salut\"", 1)

	records, warnings, err := ParseCatalogRecords([]byte(data))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, records, 3)

	assert.Equal(t, "Who?", records[0].MsgID)
	assert.True(t, records[0].Disambiguated)
	assert.False(t, records[0].Translated)
	assert.Equal(t, 1, records[0].Line)

	assert.Equal(t, "Who?", records[1].MsgID)
	assert.True(t, records[1].Disambiguated)
	assert.Equal(t, 5, records[1].Line)

	assert.Equal(t, "Hi", records[2].MsgID)
	assert.Equal(t, "Salut", records[2].MsgStr)
	assert.False(t, records[2].Disambiguated)
	assert.True(t, records[2].Translated)
	assert.Equal(t, []Location{{SourceFile: "a.bin", Hash: 3}}, records[2].Locations)
}
