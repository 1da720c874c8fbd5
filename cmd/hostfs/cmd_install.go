package main

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
	"github.com/jmgilman/go/hostfs/installbase"
)

func (a *app) installer() *installbase.Installer {
	return installbase.New(a.platform,
		installbase.WithLogger(a.logger),
		installbase.WithDirMode(a.cfg.Directories.Mode.FileMode()),
		installbase.WithFileMode(a.cfg.Files.Mode.FileMode()),
		installbase.WithParallelism(a.cfg.Install.Parallelism),
	)
}

func newInstallCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "install SOURCE TARGET",
		Short: "Install the files under SOURCE at TARGET atomically",
		Long: `Copy every file under SOURCE into a staging directory next to TARGET, stamp
each file with the integrity marker and rename the staging directory to
TARGET. If TARGET was installed by someone else first, the staged copy is
discarded and the existing install is kept.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := core.NewPath(args[0])
			if !a.platform.IsDirectory(source) {
				return notADirectory(source)
			}

			result, err := a.installer().ExtractFS(cmd.Context(), core.NewPath(args[1]), os.DirFS(source.AsNativePath()), ".")
			if err != nil {
				return err
			}
			if result.AlreadyInstalled {
				if a.jsonOutput {
					return a.printJSON(map[string]any{"target": args[1], "alreadyInstalled": true})
				}
				a.colorWarning.Fprintf(a.stdout, "%s is already installed\n", args[1])
				return nil
			}
			return a.report(map[string]any{"target": args[1], "files": result.Files},
				"installed %d file(s) at %s", result.Files, args[1])
		},
	}
}

func newVerifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify TARGET",
		Short: "Check that no file of an install base was modified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.installer().Verify(cmd.Context(), core.NewPath(args[0]))
			if err != nil {
				return err
			}

			tampered := make([]string, 0, len(report.Tampered))
			for _, p := range report.Tampered {
				tampered = append(tampered, p.AsPrintablePath())
			}

			if a.jsonOutput {
				if err := a.printJSON(map[string]any{
					"target":   args[0],
					"checked":  report.Checked,
					"tampered": tampered,
				}); err != nil {
					return err
				}
			} else if report.OK() {
				a.colorSuccess.Fprintf(a.stdout, "✓ %s: %d file(s) untampered\n", args[0], report.Checked)
			} else {
				for _, p := range tampered {
					a.colorError.Fprintf(a.stdout, "✗ %s\n", p)
				}
			}

			if !report.OK() {
				return errors.WithContext(
					errors.Newf(errors.CodeTampered, "%d of %d file(s) modified", len(tampered), report.Checked),
					"path", args[0])
			}
			return nil
		},
	}
}

func notADirectory(p core.Path) error {
	return errors.WithContext(errors.New(errors.CodeNotDirectory, "not a directory"), "path", p.AsPrintablePath())
}

func sortEntries(entries []entry) {
	slices.SortFunc(entries, func(x, y entry) int {
		return strings.Compare(x.Path, y.Path)
	})
}
