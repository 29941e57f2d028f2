package core

// Cursor is the state of the indentation-stack pass. Instead of a stack of
// open contexts it keeps only the innermost one; each line stores a link to
// its parent, so popping a level means following that link.
//
// A Cursor lives for one pass and is threaded explicitly through it.
type Cursor struct {
	Line       int    // 1-based physical line being scanned
	Column     uint32 // column reached on the current line
	Outer      int32  // innermost open context, or NoLine
	PrevIndent uint32 // indentation of Outer's level (0 at top level)
	PrevValid  int32  // most recent line that was itself eligible
	Eligible   bool   // eligibility of the current line
}

// NewCursor returns a cursor positioned before the first line.
func NewCursor() *Cursor {
	return &Cursor{
		Line:      1,
		Outer:     NoLine,
		PrevValid: NoLine,
		Eligible:  true,
	}
}

// Place assigns the parent link for the line at index with the given
// column and boundary class, updating the cursor. lines must hold every
// record before index.
func (c *Cursor) Place(lines []LineRecord, index int, column uint32, b Boundary) int32 {
	c.Eligible = b == BoundaryFull

	switch {
	case b != BoundaryNone && column < c.PrevIndent:
		// close every level the line is not deeper than
		popped := false
		for c.Outer != NoLine && column <= lines[c.Outer].Indentation {
			c.Outer = lines[c.Outer].Outer
			c.PrevIndent = 0
			if c.Outer != NoLine {
				c.PrevIndent = lines[c.Outer].Indentation
			}
			popped = true
		}
		// A closing line that cannot open leaves the surviving context as
		// the one a deeper line descends into.
		if popped && !c.Eligible {
			c.PrevValid = c.Outer
		}
	case c.Eligible && column > c.PrevIndent && index > 0:
		c.Outer = c.PrevValid
	}

	if c.Eligible {
		c.PrevIndent = column
		c.PrevValid = int32(index)
	}
	return c.Outer
}
