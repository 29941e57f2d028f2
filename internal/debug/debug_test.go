package debug

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// saveAndRestoreState saves the debug package state and returns a cleanup function
func saveAndRestoreState() func() {
	originalDebug := EnableDebug
	originalOutput := debugOutput
	originalWarn := warnOutput
	return func() {
		EnableDebug = originalDebug
		debugOutput = originalOutput
		warnOutput = originalWarn
	}
}

func TestIsDebugEnabled(t *testing.T) {
	defer saveAndRestoreState()()

	EnableDebug = "false"
	assert.False(t, IsDebugEnabled())

	Enable()
	assert.True(t, IsDebugEnabled())

	// Test invalid value defaults to false
	EnableDebug = "invalid"
	assert.False(t, IsDebugEnabled())
}

func TestLog(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetDebugOutput(&buf)

	EnableDebug = "false"
	LogLayout("built %d lines\n", 3)
	assert.Empty(t, buf.String(), "nothing is written while debug is off")

	Enable()
	LogLayout("built %d lines\n", 3)
	LogSource("read %s\n", "a.c")
	Printf("plain\n")
	assert.Equal(t, "[DEBUG:LAYOUT] built 3 lines\n[DEBUG:SOURCE] read a.c\n[DEBUG] plain\n", buf.String())
}

func TestLogWithoutWriter(t *testing.T) {
	defer saveAndRestoreState()()

	Enable()
	SetDebugOutput(nil)
	assert.NotPanics(t, func() { Log("X", "no writer\n") })
}

func TestWarn(t *testing.T) {
	defer saveAndRestoreState()()

	var buf bytes.Buffer
	SetWarnOutput(&buf)
	EnableDebug = "false"

	Warn(errors.New("a.c:3: warning: something odd"))
	assert.Equal(t, "a.c:3: warning: something odd\n", buf.String())

	SetWarnOutput(nil)
	assert.NotPanics(t, func() { Warn(errors.New("dropped")) })
}
