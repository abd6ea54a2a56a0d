package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"text/tabwriter"
	"time"

	"github.com/teleivo/dotparse"
	"github.com/teleivo/dotparse/ast"
	"github.com/teleivo/dotparse/internal/version"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(1)
	}

	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: dotx <command> [args]\ncommands: check, fmt, inspect, version")
	}

	if args[1] == "-h" || args[1] == "--help" || args[1] == "help" {
		usage(wErr)
		return nil
	}

	switch args[1] {
	case "check":
		return runCheck(args[2:], r, w, wErr)
	case "fmt":
		return runFmt(args[2:], r, w, wErr)
	case "inspect":
		return runInspect(args[2:], r, w, wErr)
	case "version":
		_, err := fmt.Fprintln(w, version.Version())
		return err
	case "":
		return errors.New("no command specified")
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "dotx is a tool for parsing DOT (Graphviz) graph files")
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, "usage: dotx <command> [args]")
	_, _ = fmt.Fprintln(w, "commands: check, fmt, inspect, version")
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// parse reads DOT source code from r and parses it.
func parse(r io.Reader, cfg dotparse.Config, logger *slog.Logger) (string, *ast.DotGraph, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", nil, fmt.Errorf("error reading input: %v", err)
	}

	start := time.Now()
	g, err := dotparse.NewParser(cfg).Parse(string(src))
	logger.Debug("parsed", "bytes", len(src), "duration", time.Since(start), "ok", err == nil)
	return string(src), g, err
}

func runFmt(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet("fmt", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "usage: dotx fmt [flags]")
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	maxDepth := flags.Int("max-depth", dotparse.DefaultMaxDepth, "maximum nesting depth of subgraphs")
	debug := flags.Bool("debug", false, "log debug messages to stderr")
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")

	err := flags.Parse(args)
	if err != nil {
		return err
	}
	logger := newLogger(wErr, *debug)

	return profile(func() error {
		_, g, err := parse(r, dotparse.Config{MaxDepth: *maxDepth}, logger)
		if err != nil {
			return fmt.Errorf("error parsing: %v", err)
		}

		_, err = fmt.Fprintln(w, g)
		return err
	}, *cpuProfile, *memProfile)
}

func profile(fn func() error, cpuProfile, memProfile string) error {
	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %v", err)
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	err := fn()
	if err != nil {
		return err
	}

	if memProfile != "" {
		f, err := os.Create(memProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %v", err)
		}
		defer func() { _ = f.Close() }()
		runtime.GC() // materialize all statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %v", err)
		}
	}

	return nil
}

func runInspect(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: dotx inspect <subcommand>\nsubcommands: ast, tokens")
	}

	switch args[0] {
	case "ast":
		return runInspectAST(args[1:], r, w, wErr)
	case "tokens":
		return runInspectTokens(args[1:], r, w, wErr)
	case "":
		return errors.New("no inspect subcommand specified")
	default:
		return fmt.Errorf("unknown inspect subcommand: %s", args[0])
	}
}

func runInspectAST(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	flags := flag.NewFlagSet("ast", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "usage: dotx inspect ast [flags]")
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	format := flags.String("format", "default", "Print the AST using its 'default' indented tree representation, or as 'json' or 'yaml'")
	maxDepth := flags.Int("max-depth", dotparse.DefaultMaxDepth, "maximum nesting depth of subgraphs")
	debug := flags.Bool("debug", false, "log debug messages to stderr")
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")

	err := flags.Parse(args)
	if err != nil {
		return err
	}
	ft, err := newFormat(*format)
	if err != nil {
		return fmt.Errorf("failed to convert -format=%q: %v", *format, err)
	}
	logger := newLogger(wErr, *debug)

	return profile(func() error {
		_, g, err := parse(r, dotparse.Config{MaxDepth: *maxDepth}, logger)
		if err != nil {
			return fmt.Errorf("error parsing: %v", err)
		}

		if err := render(w, g, ft); err != nil {
			return fmt.Errorf("error rendering AST: %v", err)
		}
		return nil
	}, *cpuProfile, *memProfile)
}

func runInspectTokens(args []string, r io.Reader, w io.Writer, wErr io.Writer) (err error) {
	flags := flag.NewFlagSet("tokens", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		_, _ = fmt.Fprintln(wErr, "usage: dotx inspect tokens [flags]")
		_, _ = fmt.Fprintln(wErr, "flags:")
		flags.PrintDefaults()
	}
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")

	err = flags.Parse(args)
	if err != nil {
		return err
	}

	return profile(func() (err error) {
		src, err := io.ReadAll(r)
		if err != nil {
			return fmt.Errorf("error reading input: %v", err)
		}

		tokens, err := dotparse.Tokenize(string(src))
		if err != nil {
			return fmt.Errorf("error tokenizing: %v", err)
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		defer func() {
			if ferr := tw.Flush(); ferr != nil && err == nil {
				err = fmt.Errorf("error flushing output: %v", ferr)
			}
		}()

		_, _ = fmt.Fprintf(tw, "POSITION\tKIND\tLITERAL\n")
		for _, tok := range tokens {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", tok.Start, tok.Kind, tok)
		}

		return nil
	}, *cpuProfile, *memProfile)
}
