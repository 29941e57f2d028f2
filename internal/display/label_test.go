package display

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/whereami/internal/core"
)

func TestIsControlFlow(t *testing.T) {
	for _, text := range []string{"if (x)", "do {", "for (;;)", "case 3:", "while (1)", "switch (k) {"} {
		assert.True(t, IsControlFlow([]byte(text)), text)
	}
	for _, text := range []string{"if(x)", "iffy()", "format(x)", "dox", "else {", "return x;"} {
		assert.False(t, IsControlFlow([]byte(text)), text)
	}
}

func TestLabel(t *testing.T) {
	f := NewLabelFormatter(LabelOptions{})

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"function header stops after paren", "void f() {", "void f("},
		{"function names render in full", "static int computeChecksum(const char *p)", "static int computeChecksum("},
		{"control line keeps parens", "if (x) {", "if(x){"},
		{"long identifier in condition is cut", "if (someLongName > 0)", "if(someLo$>0)"},
		{"control lines are capped", "while (first_condition && second_condition) {", "while(first_$&&secon"},
		{"namespace prefix stripped", "namespace detail {", "detail{"},
		{"repeated namespace prefix stripped", "namespace namespace x", "x"},
		{"line comment ends rendering", "struct point { // 2d", "struct point{"},
		{"whitespace squeezed except between words", "unsigned   long\tx = y + 1;", "unsigned long x=y+1;"},
		{"space survives after a cut identifier", "for (iterator_a in things)", "for(iterat$ in thing"},
		{"numbers are runs too", "case 1234567890:", "case 123456$:"},
		{"non-ascii is punctuation", "class Caf\xc3\xa9 {", "class Caf\xc3\xa9{"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.Label([]byte(tt.text)))
		})
	}
}

func TestLabel_SameIdentifierTwoRoles(t *testing.T) {
	f := NewLabelFormatter(LabelOptions{})

	assert.Equal(t, "if(parseH$(buf))", f.Label([]byte("if (parseHeader(buf))")))
	assert.Equal(t, "int parseHeader(", f.Label([]byte("int parseHeader(char *buf)")))
}

func TestLabel_CustomLimits(t *testing.T) {
	f := NewLabelFormatter(LabelOptions{MaxIdentLen: 3, MaxControlLen: 8})

	assert.Equal(t, "if(abc$>", f.Label([]byte("if (abcdef > 1) {")))
	assert.Equal(t, "abcdef(", f.Label([]byte("abcdef(x)")))
}

func TestLabelFormatter_Write(t *testing.T) {
	f := NewLabelFormatter(LabelOptions{})
	var sb strings.Builder
	f.Write(&sb, core.Context{Index: 41, Text: []byte("int main(int argc)")})
	assert.Equal(t, "..42: int main(", sb.String())
}
