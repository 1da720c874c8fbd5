package main

import (
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func newMkdirsCommand(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "mkdirs PATH...",
		Short: "Create directories and their parents",
		Long: `Create each PATH and any missing parents. An existing PATH must be a
directory owned by the current user; its permissions are corrected to MODE
minus the umask.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.dirMode(mode)
			if err != nil {
				return err
			}
			for _, p := range paths(args) {
				if err := a.platform.MakeDirectories(p, m); err != nil {
					return err
				}
			}
			return a.report(map[string]any{"created": args}, "created %d director(ies)", len(args))
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "octal mode (default directories.mode)")
	return cmd
}

func newRmCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm PATH...",
		Short: "Remove trees without following links",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range paths(args) {
				if err := a.platform.RemoveRecursively(p); err != nil {
					return err
				}
			}
			return a.report(map[string]any{"removed": args}, "removed %d path(s)", len(args))
		},
	}
}

func newMvCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv OLD NEW",
		Short: "Rename a directory with a single system call",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := a.platform.RenameDirectory(core.NewPath(args[0]), core.NewPath(args[1]))
			if err != nil {
				return err
			}
			return a.report(map[string]any{"outcome": outcome.String()}, "renamed %s to %s", args[0], args[1])
		},
	}
}

func newStageCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stage TARGET",
		Short: "Create a uniquely named staging directory next to TARGET",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			staging := a.platform.CreateSiblingTempDir(core.NewPath(args[0]))
			if a.jsonOutput {
				return a.printJSON(map[string]any{"staging": staging.AsPrintablePath()})
			}
			return a.emit([]byte(staging.AsPrintablePath() + "\n"))
		},
	}
}

func newStampCommand(a *app) *cobra.Command {
	var now, future, ifPossible bool
	cmd := &cobra.Command{
		Use:   "stamp PATH...",
		Short: "Set modification times to now or to the integrity marker",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stamp := a.platform.SetMtimeToNow
			kind := "now"
			switch {
			case future:
				stamp, kind = a.platform.SetMtimeToDistantFuture, "future"
			case ifPossible:
				stamp, kind = a.platform.SetMtimeToNowIfPossible, "now-if-possible"
			case !now:
				return errors.New(errors.CodeInvalidInput, "one of --now, --future or --if-possible is required")
			}

			for _, p := range paths(args) {
				if err := stamp(p); err != nil {
					return err
				}
			}
			return a.report(map[string]any{"stamped": args, "mode": kind}, "stamped %d path(s) (%s)", len(args), kind)
		},
	}
	cmd.Flags().BoolVar(&now, "now", false, "set to the current time")
	cmd.Flags().BoolVar(&future, "future", false, "set to the distant-future integrity marker")
	cmd.Flags().BoolVar(&ifPossible, "if-possible", false, "set to the current time, ignoring read-only and permission failures")
	cmd.MarkFlagsMutuallyExclusive("now", "future", "if-possible")
	cmd.MarkFlagsOneRequired("now", "future", "if-possible")
	return cmd
}
