package core

import (
	"bytes"
	"math"

	werrors "github.com/standardbeagle/whereami/internal/errors"
)

// NoLine marks the implicit root: a line at top level has no outer context.
const NoLine int32 = -1

// Limits of the record encoding.
const (
	MaxTextSize  = math.MaxUint32
	MaxLineCount = math.MaxInt32
)

// LineRecord describes one logical line.
type LineRecord struct {
	Outer       int32  // index of the nearest enclosing context line, or NoLine
	Indentation uint32 // tab-expanded column of the first non-indentation byte
	Start       uint32 // offset of the first non-indentation byte
	End         uint32 // offset where the line's text ends (before CR/LF)
}

// HasOuter reports whether the line sits inside some context.
func (r LineRecord) HasOuter() bool {
	return r.Outer != NoLine
}

// LineIndex is the result of one segmenting pass over a buffer. It is
// read-only once built.
type LineIndex struct {
	text  []byte
	lines []LineRecord
}

// Len returns the number of logical lines.
func (ix *LineIndex) Len() int {
	return len(ix.lines)
}

// Line returns the record for the 0-based line index.
func (ix *LineIndex) Line(index int) LineRecord {
	return ix.lines[index]
}

// Text returns the line's text from its first non-indentation byte, as a
// view into the buffer.
func (ix *LineIndex) Text(index int) []byte {
	r := ix.lines[index]
	return ix.text[r.Start:r.End:r.End]
}

// Records exposes the records for inspection. Callers must not modify them.
func (ix *LineIndex) Records() []LineRecord {
	return ix.lines
}

// EffectiveText returns the part of data the segmenter looks at: scanning
// stops at an embedded NUL byte.
func EffectiveText(data []byte) []byte {
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return data[:i]
	}
	return data
}

// CountLines counts the lines the segmenter will produce for data, which
// must already be cut at any NUL. A final line without a newline counts.
func CountLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	newlines := bytes.Count(data, []byte{'\n'})
	if data[len(data)-1] != '\n' {
		return newlines + 1
	}
	return newlines
}

func checkCapacity(text []byte, count int) error {
	if uint64(len(text)) > MaxTextSize {
		return werrors.NewCapacityError("file size", uint64(len(text)), MaxTextSize)
	}
	if count > MaxLineCount {
		return werrors.NewCapacityError("line count", uint64(count), MaxLineCount)
	}
	return nil
}
