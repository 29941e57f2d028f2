package core

import "bytes"

// Boundary says what a line may do to the open context.
type Boundary uint8

const (
	// BoundaryNone lines never touch the context stack (preprocessor,
	// comments, labels, case labels).
	BoundaryNone Boundary = iota
	// BoundaryClose lines may close contexts but never open one. Code that
	// follows a multi-line block comment is classified this way.
	BoundaryClose
	// BoundaryFull lines may both open and close contexts.
	BoundaryFull
)

func (b Boundary) String() string {
	switch b {
	case BoundaryNone:
		return "none"
	case BoundaryClose:
		return "close"
	case BoundaryFull:
		return "full"
	default:
		return "unknown"
	}
}

// Classify decides whether a line, given from its first non-indentation
// byte, may act as a context boundary.
func Classify(text []byte) Boundary {
	if IsEligible(text) {
		return BoundaryFull
	}
	return BoundaryNone
}

// IsEligible reports whether the line may open or close a context.
func IsEligible(text []byte) bool {
	switch {
	case len(text) == 0:
		return true
	case text[0] == '#':
		return false
	case bytes.HasPrefix(text, []byte("//")):
		return false
	case isLabel(text):
		return false
	case isCaseLabel(text):
		return false
	}
	return true
}

// isLabel matches "ident:" followed by nothing but whitespace and colons,
// which covers goto labels, access specifiers and default:.
func isLabel(text []byte) bool {
	i := 0
	for i < len(text) && IsIdentByte(text[i]) {
		i++
	}
	if i == 0 || i >= len(text) || text[i] != ':' {
		return false
	}
	for _, ch := range text[i+1:] {
		if ch != ':' && !IsSpace(ch) {
			return false
		}
	}
	return true
}

func isCaseLabel(text []byte) bool {
	return len(text) > 4 && bytes.HasPrefix(text, []byte("case")) && IsSpace(text[4])
}

// IsIdentByte reports whether ch can be part of an identifier or number.
func IsIdentByte(ch byte) bool {
	return ch == '_' || IsAlnum(ch)
}

// IsAlnum is the C locale isalnum.
func IsAlnum(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9')
}

// IsSpace matches the C locale's isspace.
func IsSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
