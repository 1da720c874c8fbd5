package main

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
	"github.com/jmgilman/go/hostfs/fs/local"
	"github.com/jmgilman/go/hostfs/internal/config"
	"github.com/jmgilman/go/hostfs/logging"
)

// app carries the state shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	jsonOutput bool
	noColor    bool

	cfg      *config.Config
	logger   *logging.Logger
	platform *local.Platform

	colorDir     *color.Color
	colorSuccess *color.Color
	colorError   *color.Color
	colorWarning *color.Color
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout:       stdout,
		stderr:       stderr,
		colorDir:     color.New(color.FgBlue, color.Bold),
		colorSuccess: color.New(color.FgGreen),
		colorError:   color.New(color.FgRed),
		colorWarning: color.New(color.FgYellow),
	}
}

// setup loads configuration and builds the logger and platform. It runs
// before every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logCfg := cfg.LogConfig()
	logCfg.Output = a.stderr
	a.cfg = cfg
	a.logger = logging.NewLogger(logCfg).WithOperation(cmd.Name())
	a.platform = local.New(local.WithLogger(a.logger))
	return nil
}

// emit writes raw bytes to stdout. The real stdout goes through the
// platform so a closed reader ends the command quietly.
func (a *app) emit(data []byte) error {
	if a.stdout != os.Stdout {
		_, err := a.stdout.Write(data)
		return err
	}
	switch a.platform.WriteToStdOutErr(data, true) {
	case core.WriteSuccess, core.WriteBrokenPipe:
		return nil
	default:
		return errors.New(errors.CodeIO, "could not write to stdout")
	}
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// report prints a one-line status unless JSON output was requested, in
// which case v is printed instead.
func (a *app) report(v any, format string, args ...any) error {
	if a.jsonOutput {
		return a.printJSON(v)
	}
	a.colorSuccess.Fprintf(a.stdout, format+"\n", args...)
	return nil
}

func (a *app) printError(err error) {
	if a.jsonOutput {
		enc := json.NewEncoder(a.stderr)
		_ = enc.Encode(map[string]any{"error": errors.ToJSON(err)})
		return
	}
	a.colorError.Fprintf(a.stderr, "Error: %v\n", err)
}

func (a *app) dirMode(flag string) (fs.FileMode, error) {
	return parseMode(flag, a.cfg.Directories.Mode.FileMode())
}

func (a *app) fileMode(flag string) (fs.FileMode, error) {
	return parseMode(flag, a.cfg.Files.Mode.FileMode())
}

func parseMode(flag string, fallback fs.FileMode) (fs.FileMode, error) {
	if flag == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(flag, "0o"), 8, 32)
	if err != nil || n > 0o777 {
		return 0, errors.Newf(errors.CodeInvalidInput, "invalid mode %q", flag)
	}
	return fs.FileMode(n), nil
}

func paths(args []string) []core.Path {
	out := make([]core.Path, 0, len(args))
	for _, arg := range args {
		out = append(out, core.NewPath(arg))
	}
	return out
}
