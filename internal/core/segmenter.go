package core

import (
	"bytes"

	"github.com/standardbeagle/whereami/internal/debug"
)

// TabStop is the default tab width used when expanding indentation.
const TabStop = 8

// Options configures a segmenting pass.
type Options struct {
	TabStop int

	// Diagnose is called for every control byte other than tab, CR and LF,
	// with the 1-based line it appears on. Parsing always continues.
	Diagnose func(line int, b byte)
}

// Build splits data into logical lines and links every line to its nearest
// enclosing context in a single forward pass.
//
// Scanning stops at the first NUL byte. A last line without a newline is
// still produced. Block comments spanning several lines yield one record
// per physical line, and the comment text itself never opens or closes a
// context.
func Build(data []byte, opts Options) (*LineIndex, error) {
	text := EffectiveText(data)
	count := CountLines(text)
	if err := checkCapacity(text, count); err != nil {
		return nil, err
	}

	tab := opts.TabStop
	if tab <= 0 {
		tab = TabStop
	}

	s := &segmenter{
		text:     text,
		tab:      uint32(tab),
		diagnose: opts.Diagnose,
		cursor:   NewCursor(),
		lines:    make([]LineRecord, 0, count),
	}
	for s.pos < len(s.text) {
		s.scanLine()
	}

	debug.LogLayout("segmented %d bytes into %d lines (expected %d)\n", len(text), len(s.lines), count)
	return &LineIndex{text: text, lines: s.lines}, nil
}

type segmenter struct {
	text     []byte
	pos      int
	tab      uint32
	diagnose func(line int, b byte)
	cursor   *Cursor
	lines    []LineRecord

	inComment     bool
	commentIndent uint32 // indentation of the line that opened the comment
}

func (s *segmenter) scanLine() {
	lineStart := s.pos
	eol := len(s.text)
	if i := bytes.IndexByte(s.text[lineStart:], '\n'); i >= 0 {
		eol = lineStart + i
	}
	s.reportControl(lineStart, eol)

	end := eol
	for end > lineStart && s.text[end-1] == '\r' {
		end--
	}

	p := s.skipIndent(lineStart, end)
	switch {
	case s.inComment:
		s.continueComment(p, end)
	case p == end:
		// whitespace-only: carries the previous indentation, cursor untouched
		s.lines = append(s.lines, LineRecord{
			Outer:       s.cursor.Outer,
			Indentation: s.cursor.PrevIndent,
			Start:       uint32(p),
			End:         uint32(p),
		})
	case s.commentAt(p, end):
		s.leadingComment(p, end)
	default:
		s.code(p, end, s.cursor.Column, Classify(s.text[p:end]))
	}

	s.pos = eol + 1
	s.cursor.Line++
}

// skipIndent advances over spaces, tabs and stray CRs, tracking the column.
func (s *segmenter) skipIndent(p, end int) int {
	s.cursor.Column = 0
	for ; p < end; p++ {
		switch s.text[p] {
		case ' ':
			s.cursor.Column++
		case '\t':
			s.cursor.Column++
			s.cursor.Column = s.tab * ((s.cursor.Column + s.tab - 1) / s.tab)
		case '\r':
		default:
			return p
		}
	}
	return p
}

func (s *segmenter) code(p, end int, indent uint32, b Boundary) {
	s.record(p, end, indent, b)
	if s.tailOpensComment(p, end) {
		s.inComment = true
		s.commentIndent = indent
	}
}

func (s *segmenter) record(p, end int, indent uint32, b Boundary) {
	outer := s.cursor.Place(s.lines, len(s.lines), indent, b)
	s.lines = append(s.lines, LineRecord{
		Outer:       outer,
		Indentation: indent,
		Start:       uint32(p),
		End:         uint32(end),
	})
}

// leadingComment handles a line whose first non-indentation bytes open a
// block comment. Code after the comment on the same line is classified as
// usual but keeps the comment's column.
func (s *segmenter) leadingComment(p, end int) {
	indent := s.cursor.Column
	q, open := s.skipComments(p, end)
	switch {
	case open:
		s.record(p, end, indent, BoundaryNone)
		s.inComment = true
		s.commentIndent = indent
	case q == end:
		s.record(p, end, indent, BoundaryNone)
	default:
		s.code(q, end, indent, Classify(s.text[q:end]))
	}
}

// continueComment handles a physical line that starts inside a block comment.
func (s *segmenter) continueComment(p, end int) {
	indent := s.cursor.Column
	q, closed := s.skipComment(p, end)
	if !closed {
		s.record(p, end, indent, BoundaryNone)
		return
	}
	q, open := s.skipComments(q, end)
	if open {
		s.record(p, end, indent, BoundaryNone)
		return
	}
	s.inComment = false
	if q == end {
		s.record(p, end, indent, BoundaryNone)
		return
	}

	// Code resuming after a multi-line comment may close contexts at the
	// indentation the comment started from, but never opens one.
	b := BoundaryClose
	if Classify(s.text[q:end]) == BoundaryNone {
		b = BoundaryNone
	}
	s.code(q, end, s.commentIndent, b)
}

func (s *segmenter) commentAt(p, end int) bool {
	return p+1 < end && s.text[p] == '/' && s.text[p+1] == '*'
}

// skipComment scans from just inside a comment for its closing "*/".
func (s *segmenter) skipComment(p, end int) (int, bool) {
	i := bytes.Index(s.text[p:end], []byte("*/"))
	if i < 0 {
		return end, false
	}
	return p + i + 2, true
}

// skipComments skips whitespace and any run of block comments starting at
// p. It reports open when a comment is still unterminated at end.
func (s *segmenter) skipComments(p, end int) (int, bool) {
	for {
		for p < end && IsSpace(s.text[p]) {
			p++
		}
		if !s.commentAt(p, end) {
			return p, false
		}
		var closed bool
		if p, closed = s.skipComment(p+2, end); !closed {
			return end, true
		}
	}
}

// tailOpensComment reports whether the rest of a code line leaves a block
// comment open. String and character literals are skipped so that "a/*b"
// and '"' do not count; a line comment ends the scan.
func (s *segmenter) tailOpensComment(p, end int) bool {
	for q := p; q < end; q++ {
		switch s.text[q] {
		case '"', '\'':
			q = s.skipQuoted(q+1, end, s.text[q])
		case '/':
			if q+1 >= end {
				return false
			}
			switch s.text[q+1] {
			case '/':
				return false
			case '*':
				r, closed := s.skipComment(q+2, end)
				if !closed {
					return true
				}
				q = r - 1
			}
		}
	}
	return false
}

// skipQuoted returns the offset of the closing quote, or end.
func (s *segmenter) skipQuoted(p, end int, quote byte) int {
	for ; p < end; p++ {
		switch s.text[p] {
		case '\\':
			p++
		case quote:
			return p
		}
	}
	return end
}

func (s *segmenter) reportControl(p, end int) {
	if s.diagnose == nil {
		return
	}
	for _, ch := range s.text[p:end] {
		if ch < 0x20 && ch != '\t' && ch != '\r' {
			s.diagnose(s.cursor.Line, ch)
		}
	}
}
