package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		eligible bool
	}{
		{"empty", "", true},
		{"function header", "void f() {", true},
		{"preprocessor", "#include <stdio.h>", false},
		{"preprocessor conditional", "#ifdef DEBUG", false},
		{"line comment", "// explains things", false},
		{"single slash", "/ 2;", true},
		{"access specifier", "public:", false},
		{"default label", "default:", false},
		{"goto label with trailing space", "retry: \t", false},
		{"label with extra colons", "done::", false},
		{"scope resolution", "std::string name;", true},
		{"label followed by code", "out: return 0;", true},
		{"ternary", "x ? a : b;", true},
		{"case label", "case 1:", false},
		{"case with tab", "case\tRED:", false},
		{"identifier starting with case", "cases = 3;", true},
		{"bare case", "case", true},
		{"colon without identifier", ": base()", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.eligible, IsEligible([]byte(tt.text)))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, BoundaryFull, Classify([]byte("while (1) {")))
	assert.Equal(t, BoundaryNone, Classify([]byte("#endif")))
	assert.Equal(t, "full", BoundaryFull.String())
	assert.Equal(t, "close", BoundaryClose.String())
	assert.Equal(t, "none", BoundaryNone.String())
}

func TestCharacterClasses(t *testing.T) {
	for _, ch := range []byte("azAZ09_") {
		assert.True(t, IsIdentByte(ch), "%q", ch)
	}
	for _, ch := range []byte("$(.: \xc3") {
		assert.False(t, IsIdentByte(ch), "%q", ch)
	}
	for _, ch := range []byte(" \t\n\v\f\r") {
		assert.True(t, IsSpace(ch), "%q", ch)
	}
	assert.False(t, IsSpace(0))
	assert.False(t, IsAlnum('_'))
}
