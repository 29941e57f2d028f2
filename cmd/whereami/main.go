package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/whereami/internal/core"
	"github.com/standardbeagle/whereami/internal/debug"
	"github.com/standardbeagle/whereami/internal/display"
	werrors "github.com/standardbeagle/whereami/internal/errors"
	"github.com/standardbeagle/whereami/internal/source"
	"github.com/standardbeagle/whereami/internal/version"
)

const usageFormat = "Usage: %s <SOURCEFILENAME> <LINE>\n\nLINE...line number for which to print whereami information, 0 means print all\n"

// helpSpellings print the usage text and succeed wherever they appear
var helpSpellings = []string{"--help", "/?", "/help"}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	progname := "whereami"
	if len(args) > 0 && args[0] != "" {
		progname = args[0]
	}

	if len(args) > 1 && slices.ContainsFunc(args[1:], isHelp) {
		fmt.Fprintf(stdout, usageFormat, progname)
		return werrors.ExitOK
	}

	err := newApp(progname, stdout, stderr).Run(args)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		var usage *werrors.UsageError
		if errors.As(err, &usage) {
			fmt.Fprintf(stderr, usageFormat, progname)
		}
	}
	return werrors.ExitCode(err)
}

func isHelp(arg string) bool {
	return slices.Contains(helpSpellings, arg)
}

func newApp(progname string, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "whereami",
		HelpName:  progname,
		Usage:     "Print the enclosing contexts of a source line",
		UsageText: "whereami <SOURCEFILENAME> <LINE>",
		Version:   version.Info(),
		// Help spellings are handled before the app runs. A file named
		// "help" must not turn into the help command.
		HideHelp:        true,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:   "debug",
				Usage:  "Log read and layout statistics to stderr",
				Hidden: true,
			},
		},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return werrors.NewUsageError("%v", err).WithCause(err)
		},
		// Exit handling belongs to run
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.Bool("debug") {
				debug.Enable()
				debug.SetDebugOutput(stderr)
				debug.Printf("%s\n", version.FullInfo())
			}
			debug.SetWarnOutput(stderr)
			return whereami(c.Args().Slice(), stdout)
		},
	}
}

// whereami validates the positional arguments, then reads, segments and
// renders the file. The command line is checked before any file is touched.
func whereami(args []string, stdout io.Writer) error {
	if len(args) != 2 {
		return werrors.NewUsageError("expected two arguments on the command line, got %d", len(args))
	}
	path := args[0]
	query, err := parseLineNumber(args[1])
	if err != nil {
		return err
	}

	file, err := source.Read(path)
	if err != nil {
		return err
	}

	opts := core.Options{TabStop: core.TabStop}
	opts.Diagnose = func(line int, b byte) {
		debug.Warn(&werrors.LineDiagnostic{Path: path, Line: line, Byte: b})
	}
	ix, err := core.Build(file.Content, opts)
	if err != nil {
		return err
	}

	if query > uint64(ix.Len()) {
		return werrors.NewUsageError("line %d is past the end of '%s', which has %d lines", query, path, ix.Len())
	}

	out := bufio.NewWriter(stdout)
	crumbs := display.NewBreadcrumb(display.DefaultBreadcrumbOptions())
	if query == 0 {
		err = crumbs.WriteSummary(out, ix)
	} else {
		err = crumbs.WriteQuery(out, ix, int(query-1))
	}
	if err != nil {
		return err
	}
	return out.Flush()
}

// parseLineNumber accepts a non-negative decimal line number
func parseLineNumber(arg string) (uint64, error) {
	n, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, werrors.NewUsageError("expected a line number as the second command-line argument but got: '%s'", arg).WithCause(err)
	}
	return n, nil
}
