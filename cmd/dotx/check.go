package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/teleivo/dotparse"
	"github.com/teleivo/dotparse/ast"
)

// styles used to report the result of checking a file.
type styles struct {
	file   lipgloss.Style
	err    lipgloss.Style
	ok     lipgloss.Style
	gutter lipgloss.Style
	caret  lipgloss.Style
}

func newStyles(w io.Writer) styles {
	// colors are only emitted if w is a terminal
	re := lipgloss.NewRenderer(w)
	return styles{
		file:   re.NewStyle().Bold(true),
		err:    re.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		ok:     re.NewStyle().Foreground(lipgloss.Color("42")),
		gutter: re.NewStyle().Foreground(lipgloss.Color("241")),
		caret:  re.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	}
}

func runCheck(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet("check", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "usage: dotx check [flags] [file...]")
		_, _ = fmt.Fprintln(wErr, "Checks the syntax of the given files or of stdin if no file is given.")
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	maxDepth := flags.Int("max-depth", dotparse.DefaultMaxDepth, "maximum nesting depth of subgraphs")
	debug := flags.Bool("debug", false, "log debug messages to stderr")

	err := flags.Parse(args)
	if err != nil {
		return err
	}
	logger := newLogger(wErr, *debug)
	cfg := dotparse.Config{MaxDepth: *maxDepth}
	st := newStyles(w)

	if flags.NArg() == 0 {
		return check(w, st, "<stdin>", r, cfg, logger)
	}

	var failed int
	for _, name := range flags.Args() {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = check(w, st, name, f, cfg, logger.With("file", name))
		_ = f.Close()
		if err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files have errors", failed, flags.NArg())
	}
	return nil
}

// check parses the DOT source code in r and reports the outcome to w. Parse errors are shown with
// an excerpt of the offending line.
func check(w io.Writer, st styles, name string, r io.Reader, cfg dotparse.Config, logger *slog.Logger) error {
	src, g, err := parse(r, cfg, logger)
	var parseErr dotparse.Error
	if errors.As(err, &parseErr) {
		_, _ = fmt.Fprintf(w, "%s:%s\n", st.file.Render(name), st.err.Render(parseErr.Error()))
		_, _ = fmt.Fprint(w, excerpt(st, src, parseErr))
		return err
	} else if err != nil {
		return err
	}

	stats := ast.Count(g)
	_, err = fmt.Fprintf(w, "%s: %s (%d nodes, %d edges, %d subgraphs)\n",
		st.file.Render(name), st.ok.Render("ok"), stats.Nodes, stats.Edges, stats.Subgraphs)
	return err
}

// excerpt renders the source line the error points at with a caret below the error column.
func excerpt(st styles, src string, parseErr dotparse.Error) string {
	lines := strings.Split(src, "\n")
	if !parseErr.Pos.IsValid() || parseErr.Pos.Line > len(lines) {
		return ""
	}
	line := strings.TrimRight(lines[parseErr.Pos.Line-1], "\r")

	var caret strings.Builder
	for i, r := range []rune(line) {
		if i >= parseErr.Pos.Column-1 {
			break
		}
		if r == '\t' {
			caret.WriteRune('\t')
		} else {
			caret.WriteRune(' ')
		}
	}
	if pad := parseErr.Pos.Column - 1 - len([]rune(line)); pad > 0 {
		caret.WriteString(strings.Repeat(" ", pad))
	}

	lineNumber := fmt.Sprintf("%5d | ", parseErr.Pos.Line)
	emptyGutter := strings.Repeat(" ", 6) + "| "
	return st.gutter.Render(lineNumber) + line + "\n" +
		st.gutter.Render(emptyGutter) + caret.String() + st.caret.Render("^") + "\n"
}
