package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/standardbeagle/whereami/internal/core"
)

// Defaults for breadcrumb assembly
const (
	DefaultElideDistance = 20
	DefaultEllipsis      = "..."
)

// BreadcrumbOptions controls elision and assembly
type BreadcrumbOptions struct {
	ElideDistance int    // contexts closer than this many lines to the target are not printed
	Ellipsis      string // printed once when anything was elided
	Labels        LabelOptions
}

// Breadcrumb turns a line's context chain into one line of labels
type Breadcrumb struct {
	options BreadcrumbOptions
	labels  *LabelFormatter
}

// NewBreadcrumb creates a new breadcrumb renderer
func NewBreadcrumb(options BreadcrumbOptions) *Breadcrumb {
	if options.ElideDistance < 0 {
		options.ElideDistance = DefaultElideDistance
	}
	if options.Ellipsis == "" {
		options.Ellipsis = DefaultEllipsis
	}
	return &Breadcrumb{
		options: options,
		labels:  NewLabelFormatter(options.Labels),
	}
}

// DefaultBreadcrumbOptions returns the stock rendering settings
func DefaultBreadcrumbOptions() BreadcrumbOptions {
	return BreadcrumbOptions{
		ElideDistance: DefaultElideDistance,
		Ellipsis:      DefaultEllipsis,
		Labels: LabelOptions{
			MaxIdentLen:   DefaultMaxIdentLen,
			MaxControlLen: DefaultMaxControlLen,
		},
	}
}

// Render writes the labels of contexts, outermost first, for the line at
// target. It returns how many contexts were elided.
func (b *Breadcrumb) Render(sb *strings.Builder, target int, contexts []core.Context) int {
	elided := 0
	for _, ctx := range contexts {
		if target-ctx.Index < b.options.ElideDistance {
			elided++
			continue
		}
		b.labels.Write(sb, ctx)
	}
	if elided > 0 {
		sb.WriteString(b.options.Ellipsis)
	}
	return elided
}

// Line renders the breadcrumb for the 0-based line index, without a
// trailing newline.
func (b *Breadcrumb) Line(ix *core.LineIndex, index int) (string, error) {
	contexts, err := ix.Contexts(index)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	b.Render(&sb, index, contexts)
	return sb.String(), nil
}

// SummaryLine renders one line of the whole-file listing: the line's own
// number, its parent's number (0 for none) and its indentation, followed
// by its breadcrumb.
func (b *Breadcrumb) SummaryLine(ix *core.LineIndex, index int) (string, error) {
	contexts, err := ix.Contexts(index)
	if err != nil {
		return "", err
	}
	r := ix.Line(index)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%5d: %5d<- %2d: ", index+1, int(r.Outer)+1, r.Indentation)
	b.Render(&sb, index, contexts)
	return sb.String(), nil
}

// WriteQuery writes the breadcrumb of one line followed by a newline
func (b *Breadcrumb) WriteQuery(w io.Writer, ix *core.LineIndex, index int) error {
	line, err := b.Line(ix, index)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, line+"\n")
	return err
}

// WriteSummary writes one summary line per logical line of the file
func (b *Breadcrumb) WriteSummary(w io.Writer, ix *core.LineIndex) error {
	for i := 0; i < ix.Len(); i++ {
		line, err := b.SummaryLine(ix, i)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
