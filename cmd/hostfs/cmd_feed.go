package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/exec"
)

func newFeedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feed -- COMMAND [ARG...]",
		Short: "Run COMMAND with standard input available on descriptor 3",
		Long: `Read standard input, then run COMMAND with the read end of a pipe as
descriptor 3 and write the input into the pipe. COMMAND inherits the
environment; its own standard input is empty. Its output is passed through,
or returned in the JSON result with --json.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, errors.CodeIO, "reading standard input")
			}

			pipe := a.platform.CreatePipe()
			recv, err := pipe.ReceiveFile()
			if err != nil {
				_ = pipe.Close()
				return err
			}

			sent := make(chan error, 1)
			go func() {
				err := pipe.Send(data)
				_ = pipe.Close()
				sent <- err
			}()

			opts := []exec.Option{
				exec.WithLogger(a.logger),
				exec.WithContext(cmd.Context()),
				exec.WithInheritEnv(),
			}
			if !a.jsonOutput {
				opts = append(opts, exec.WithStdout(a.stdout), exec.WithStderr(a.stderr), exec.WithPassthrough())
			}
			result, runErr := exec.New(opts...).WithExtraFiles(recv).Run(args...)

			// With every reader gone a blocked Send fails instead of waiting.
			_ = recv.Close()
			_ = pipe.Close()
			if err := <-sent; err != nil {
				a.logger.Warn(cmd.Context(), "command did not read all input",
					"bytes", len(data), "error", err.Error())
			}

			if a.jsonOutput && result != nil {
				if err := a.printJSON(map[string]any{
					"exitCode": result.ExitCode,
					"stdout":   result.Stdout,
					"stderr":   result.Stderr,
				}); err != nil {
					return err
				}
			}
			return runErr
		},
	}
}
