package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hostfs",
		Short: "Host filesystem operations for install bases",
		Long: `hostfs runs the host filesystem primitives used to manage install bases:
creating directory trees with exact permissions, removing trees without
following links, staging and atomically installing directories, and stamping
and verifying integrity markers.

Exit status is 0 on success and 1 when an operation fails. Unrecoverable
host conditions exit with 36 (local environment) or 37 (internal error).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "hostfs.yaml", "configuration file; missing means defaults")
	flags.StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")
	flags.BoolVar(&a.jsonOutput, "json", false, "print results and errors as JSON")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newMkdirsCommand(a),
		newRmCommand(a),
		newMvCommand(a),
		newStageCommand(a),
		newWriteCommand(a),
		newCatCommand(a),
		newLsCommand(a),
		newStampCommand(a),
		newInstallCommand(a),
		newVerifyCommand(a),
		newFeedCommand(a),
	)
	return root
}

// run executes the command line and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		a.printError(err)
		return 1
	}
	return 0
}
