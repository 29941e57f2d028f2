package version

import (
	"runtime/debug"
)

// Version is the current semantic version
const Version = "1.0.0"

// Build metadata, set with
// go build -ldflags "-X github.com/standardbeagle/whereami/internal/version.GitCommit=..."
var (
	BuildDate = "development"
	GitCommit = "unknown"
)

// Info returns version information as a string
func Info() string {
	return Version
}

// FullInfo returns detailed version information, including the Go
// toolchain the binary was built with when that is known
func FullInfo() string {
	info := "whereami " + Version + " (commit: " + GitCommit + ", built: " + BuildDate + ")"
	if bi, ok := debug.ReadBuildInfo(); ok && bi.GoVersion != "" {
		info += " " + bi.GoVersion
	}
	return info
}
