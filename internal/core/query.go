package core

import (
	"fmt"
	"slices"
)

// Context is one enclosing line resolved for a query.
type Context struct {
	Index int    // 0-based line index
	Text  []byte // the line from its first non-indentation byte
}

// Number returns the 1-based line number.
func (c Context) Number() int {
	return c.Index + 1
}

// Contexts returns the contexts enclosing the line at target, outermost
// first. A top-level line has none.
//
// Brace-only ancestors are replaced by the nearest earlier line that is
// not indented deeper, so "{" on its own line resolves to the header above
// it. That backward scan is linear in the distance walked, which only
// matters for long runs of consecutive brace lines.
func (ix *LineIndex) Contexts(target int) ([]Context, error) {
	if target < 0 || target >= len(ix.lines) {
		return nil, fmt.Errorf("line index %d out of range [0,%d)", target, len(ix.lines))
	}

	var chain []Context
	for outer := ix.lines[target].Outer; outer != NoLine; outer = ix.lines[outer].Outer {
		i := ix.resolveBoring(int(outer))
		chain = append(chain, Context{Index: i, Text: ix.Text(i)})
	}
	slices.Reverse(chain)
	return chain, nil
}

// IsBoring reports whether the line starts with an opening brace.
func (ix *LineIndex) IsBoring(index int) bool {
	text := ix.Text(index)
	return len(text) > 0 && text[0] == '{'
}

func (ix *LineIndex) resolveBoring(index int) int {
	bound := ix.lines[index].Indentation
	for index > 0 && ix.IsBoring(index) {
		index--
		for index > 0 && ix.lines[index].Indentation > bound {
			index--
		}
	}
	return index
}
