package display

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/standardbeagle/whereami/internal/core"
)

// Default label limits
const (
	DefaultMaxIdentLen   = 6
	DefaultMaxControlLen = 20
)

var (
	controlKeywords = [][]byte{
		[]byte("if "),
		[]byte("do "),
		[]byte("for "),
		[]byte("case "),
		[]byte("while "),
		[]byte("switch "),
	}
	namespacePrefix = []byte("namespace ")
)

// LabelOptions controls how a context line is rendered
type LabelOptions struct {
	MaxIdentLen   int // identifier and number runs are cut to this length, then '$'
	MaxControlLen int // maximum rendered length of a control-flow header
}

// LabelFormatter renders context lines into compact labels
type LabelFormatter struct {
	options LabelOptions
}

// NewLabelFormatter creates a new label formatter
func NewLabelFormatter(options LabelOptions) *LabelFormatter {
	if options.MaxIdentLen <= 0 {
		options.MaxIdentLen = DefaultMaxIdentLen
	}
	if options.MaxControlLen <= 0 {
		options.MaxControlLen = DefaultMaxControlLen
	}
	return &LabelFormatter{options: options}
}

// IsControlFlow reports whether text starts with a control keyword and a space
func IsControlFlow(text []byte) bool {
	for _, kw := range controlKeywords {
		if bytes.HasPrefix(text, kw) {
			return true
		}
	}
	return false
}

// Write renders ctx as "..<line>: <label>"
func (f *LabelFormatter) Write(sb *strings.Builder, ctx core.Context) {
	sb.WriteString("..")
	sb.WriteString(strconv.Itoa(ctx.Number()))
	sb.WriteString(": ")
	f.writeLabel(sb, ctx.Text)
}

// Label renders text without the line-number prefix
func (f *LabelFormatter) Label(text []byte) string {
	var sb strings.Builder
	f.writeLabel(&sb, text)
	return sb.String()
}

// writeLabel copies text with whitespace squeezed out. A line that is not
// control flow may be a function header: its identifiers are kept whole and
// rendering stops right after the first '('. Everywhere else long
// identifiers are cut with '$'.
func (f *LabelFormatter) writeLabel(sb *strings.Builder, text []byte) {
	control := IsControlFlow(text)
	fnCandidate := !control
	for bytes.HasPrefix(text, namespacePrefix) {
		text = text[len(namespacePrefix):]
	}

	runLen := 0
	emitted := 0
	prevIdent := false
	sawSpace := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if core.IsSpace(ch) {
			runLen = 0
			sawSpace = true
			continue
		}
		if ch == '/' && i+1 < len(text) && text[i+1] == '/' {
			return
		}

		if core.IsIdentByte(ch) {
			// one space survives between two identifier runs
			if sawSpace && prevIdent {
				sb.WriteByte(' ')
				emitted++
			}
			switch {
			case fnCandidate || runLen < f.options.MaxIdentLen:
				sb.WriteByte(ch)
				emitted++
			case runLen == f.options.MaxIdentLen:
				sb.WriteByte('$')
				emitted++
			}
			runLen++
			prevIdent = true
		} else {
			sb.WriteByte(ch)
			emitted++
			if ch == '(' && fnCandidate {
				return
			}
			runLen = 0
			prevIdent = false
		}
		sawSpace = false

		if control && emitted >= f.options.MaxControlLen {
			return
		}
	}
}
