package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sanity-io/litter"
	log "github.com/sirupsen/logrus"
)

type parsingTarget int

const (
	parsingNone parsingTarget = iota
	parsingMsgid
	parsingMsgstr
)

// Going from msgstr (final) back to a comment or msgid (pre) starts a new record.
type parsePhase int

const (
	phasePre parsePhase = iota
	phaseFinal
)

type pendingComment struct {
	line int
	text string
}

type catalogParser struct {
	msgid      strings.Builder
	msgstr     strings.Builder
	comments   []pendingComment
	recordLine int
	parsing    parsingTarget
	phase      parsePhase
	decoder    lineDecoder

	records  []*CatalogRecord
	warnings []PoWarning
}

// ParseCatalog parses catalog text into entries, in the order of their "#."
// comments. An untranslated msgstr defaults to the text of its msgid.
//
// Malformed lines are skipped and reported as warnings. A corrupted escape
// sequence or location comment fails the whole catalog with a *CatalogError.
func ParseCatalog(data []byte) ([]*Entry, []PoWarning, error) {
	records, warnings, err := ParseCatalogRecords(data)
	if err != nil {
		return nil, warnings, err
	}

	var entries []*Entry
	for _, record := range records {
		entries = append(entries, record.Entries()...)
	}
	return entries, warnings, nil
}

// ParseCatalogRecords parses catalog text into msgid blocks.
func ParseCatalogRecords(data []byte) ([]*CatalogRecord, []PoWarning, error) {
	var p catalogParser

	for i, line := range strings.Split(string(data), "\n") {
		if err := p.parseLine(i+1, strings.TrimSuffix(line, "\r")); err != nil {
			return nil, p.warnings, err
		}
	}
	if err := p.flush(); err != nil {
		return nil, p.warnings, err
	}
	return p.records, p.warnings, nil
}

func (p *catalogParser) parseLine(lineNo int, line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	// Continuation of the previous msgid or msgstr
	if strings.HasPrefix(line, `"`) {
		target := p.target()
		if target == nil {
			p.warnings = append(p.warnings, LineTypeUnknown{LineNo: lineNo, Token: `"`})
			return nil
		}
		return p.decode(lineNo, line, target)
	}

	token, rest, _ := strings.Cut(line, " ")
	nextPhase := p.phase
	switch token {
	case "msgstr":
		p.parsing = parsingMsgstr
		nextPhase = phaseFinal
	case "msgid":
		p.parsing = parsingMsgid
		nextPhase = phasePre
	case "#.":
		nextPhase = phasePre
	default:
		p.warnings = append(p.warnings, LineTypeUnknown{LineNo: lineNo, Token: token})
		return nil
	}

	if p.phase == phaseFinal && nextPhase == phasePre {
		if err := p.flush(); err != nil {
			return err
		}
	}
	p.phase = nextPhase
	if p.recordLine == 0 {
		p.recordLine = lineNo
	}

	if token == "#." {
		p.comments = append(p.comments, pendingComment{line: lineNo, text: rest})
		return nil
	}
	return p.decode(lineNo, rest, p.target())
}

func (p *catalogParser) target() *strings.Builder {
	switch p.parsing {
	case parsingMsgid:
		return &p.msgid
	case parsingMsgstr:
		return &p.msgstr
	}
	return nil
}

func (p *catalogParser) decode(lineNo int, text string, target *strings.Builder) error {
	if err := p.decoder.feed(text, target); err != nil {
		return &CatalogError{Line: lineNo, Err: err}
	}
	unclosed, unfinished := p.decoder.endLine(target)
	if unclosed {
		p.warnings = append(p.warnings, UnclosedQuote{LineNo: lineNo})
	}
	if unfinished {
		p.warnings = append(p.warnings, UnfinishedEscape{LineNo: lineNo})
	}
	return nil
}

// flush turns the pending msgid, msgstr and comments into a record.
func (p *catalogParser) flush() error {
	defer p.reset()

	if p.msgid.Len() == 0 && len(p.comments) == 0 {
		return nil
	}

	msgid := p.msgid.String()
	msgstr := p.msgstr.String()
	if msgid == " " {
		msgid, msgstr = "", ""
	}
	record := &CatalogRecord{Line: p.recordLine}
	if i := strings.Index(msgid, disambiguationMarker); i >= 0 {
		record.Disambiguated = len(msgid) > i+len(disambiguationMarker)
		msgid = msgid[:i]
	}
	record.MsgID = msgid
	record.MsgStr = msgstr
	record.Translated = msgstr != ""
	if !record.Translated {
		record.MsgStr = msgid
	}

	if len(p.comments) == 0 {
		return &CatalogError{Line: p.recordLine, Err: ErrMissingComment}
	}
	for _, comment := range p.comments {
		loc, err := parseLocation(comment.text)
		if err != nil {
			return &CatalogError{Line: comment.line, Err: err}
		}
		record.Locations = append(record.Locations, loc)
	}

	if log.IsLevelEnabled(log.TraceLevel) {
		log.Tracef("parsed catalog record: %s", litter.Sdump(record))
	}
	p.records = append(p.records, record)
	return nil
}

func (p *catalogParser) reset() {
	p.msgid.Reset()
	p.msgstr.Reset()
	p.comments = nil
	p.recordLine = 0
}

// parseLocation parses "<source_file> <hash> <unk>".
func parseLocation(text string) (Location, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Location{}, fmt.Errorf("%w: want \"<source_file> <hash> <unk>\", got %q",
			ErrMalformedComment, text)
	}
	hash, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return Location{}, fmt.Errorf("%w: hash %q", ErrInvalidNumber, fields[1])
	}
	unk, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil {
		return Location{}, fmt.Errorf("%w: unk %q", ErrInvalidNumber, fields[2])
	}
	return Location{
		SourceFile: fields[0],
		Hash:       uint32(hash),
		Unk:        uint32(unk),
	}, nil
}
