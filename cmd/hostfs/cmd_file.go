package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/hostfs/errors"
	"github.com/jmgilman/go/hostfs/fs/core"
)

func newWriteCommand(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "write PATH",
		Short: "Replace PATH with standard input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.fileMode(mode)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, errors.CodeIO, "reading standard input")
			}
			if err := a.platform.WriteFile(data, core.NewPath(args[0]), m); err != nil {
				return err
			}
			return a.report(map[string]any{"path": args[0], "bytes": len(data)}, "wrote %d bytes to %s", len(data), args[0])
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "octal mode (default files.mode)")
	return cmd
}

func newCatCommand(a *app) *cobra.Command {
	var maxSize int
	cmd := &cobra.Command{
		Use:   "cat PATH",
		Short: "Print a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max") {
				maxSize = a.cfg.Files.MaxReadSize
			}
			data, err := a.platform.ReadFile(core.NewPath(args[0]), maxSize)
			if err != nil {
				return err
			}
			return a.emit(data)
		},
	}
	cmd.Flags().IntVar(&maxSize, "max", 0, "read at most this many bytes (default files.maxReadSize, 0 = all)")
	return cmd
}
