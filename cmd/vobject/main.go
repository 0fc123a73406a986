// Command vobject formats, checks and dumps vCard and iCalendar files.
//
// Usage:
//
//	vobject [-log default|dev|tint|none] [-v] fmt|check|dump [FILE...]
//
// Standard input is read when no file is given.
// The default of the -log flag is taken from the VOBJECT_LOG environment variable,
// which may also be set in a .env file of the working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/ghettovoice/vobject"
	"github.com/ghettovoice/vobject/internal/errorutil"
	"github.com/ghettovoice/vobject/log"
)

const envLog = "VOBJECT_LOG"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "load .env:", err)
	}
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	log            *slog.Logger
	parser         *vobject.Parser
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("vobject", flag.ContinueOnError)
	fset.SetOutput(stderr)
	logKind := fset.String("log", envOr(envLog, "default"), "logger: default, dev, tint or none")
	verbose := fset.Bool("v", false, "enable debug logging")
	fset.Usage = func() {
		fmt.Fprintln(fset.Output(), "usage: vobject [flags] fmt|check|dump [FILE...]")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		return 2
	}
	if fset.NArg() == 0 {
		fset.Usage()
		return 2
	}

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	logger, err := newLogger(*logKind, stderr, lvl)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	a := &app{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    logger,
		parser: vobject.NewParser(&vobject.ParserOptions{Logger: logger}),
	}

	var cmd func(name string, data []byte) error
	switch fset.Arg(0) {
	case "fmt":
		cmd = a.format
	case "check":
		cmd = a.check
	case "dump":
		cmd = a.dump
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", fset.Arg(0))
		fset.Usage()
		return 2
	}

	if err := a.each(fset.Args()[1:], cmd); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func newLogger(kind string, w io.Writer, lvl slog.Level) (*slog.Logger, error) {
	switch kind {
	case "default":
		return log.NewConsole(w, lvl), nil
	case "dev":
		return log.NewDev(w, lvl), nil
	case "tint":
		return log.NewTint(w, lvl), nil
	case "none":
		return log.Noop, nil
	default:
		return nil, errorutil.NewInvalidArgumentError("unknown logger %q", kind)
	}
}

// each runs cmd on every named file or on stdin when there are no names.
// Failed files do not stop the run, their errors are joined.
func (a *app) each(names []string, cmd func(name string, data []byte) error) error {
	if len(names) == 0 {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		return cmd("<stdin>", data)
	}

	var errs []error
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err == nil {
			err = cmd(name, data)
		}
		if err != nil {
			a.log.Debug("file failed", "file", name, "malformed", errorutil.IsGrammarErr(err), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errorutil.JoinPrefix("vobject:", errs...)
}

// components parses all components of data and calls fn for each of them.
func (a *app) components(data []byte, fn func(*vobject.Component) error) error {
	var n int
	for c, err := range a.parser.Components(string(data)) {
		if err != nil {
			return fmt.Errorf("component #%d: %w", n+1, err)
		}
		n++
		if err := fn(c); err != nil {
			return err
		}
	}
	if n == 0 {
		return vobject.ErrEmptyInput
	}
	return nil
}

func (a *app) format(_ string, data []byte) error {
	return a.components(data, func(c *vobject.Component) error {
		_, err := c.RenderTo(a.stdout)
		return err
	})
}

func (a *app) check(name string, data []byte) error {
	var invalid []error
	err := a.components(data, func(c *vobject.Component) error {
		if !c.IsValid() {
			invalid = append(invalid, errorutil.NewInvalidArgumentError("component %s has invalid names", c.Name))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if err := errorutil.JoinPrefix("check failed:", invalid...); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "%s: ok\n", name)
	return nil
}

func (a *app) dump(_ string, data []byte) error {
	return a.components(data, func(c *vobject.Component) error {
		dumpComponent(a.stdout, c, "")
		return nil
	})
}

func dumpComponent(w io.Writer, c *vobject.Component, indent string) {
	fmt.Fprintf(w, "%s%s\n", indent, c.Name)
	for _, name := range c.PropNames() {
		for _, p := range c.GetAll(name) {
			fmt.Fprintf(w, "%s  %s", indent, p.Name)
			if p.Group != "" {
				fmt.Fprintf(w, " group=%s", p.Group)
			}
			for _, k := range p.Params.Keys() {
				fmt.Fprintf(w, " %s=%q", k, p.Params[k])
			}
			fmt.Fprintf(w, ": %q\n", p.Value())
		}
	}
	for _, sub := range c.Subcomponents {
		dumpComponent(w, sub, indent+"  ")
	}
}
