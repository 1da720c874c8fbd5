package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/hostfs/fs/core"
)

type entry struct {
	Path      string `json:"path"`
	Directory bool   `json:"directory"`
}

func newLsCommand(a *app) *cobra.Command {
	var recursive bool
	cmd := &cobra.Command{
		Use:   "ls DIR",
		Short: "List a directory without following links",
		Long: `List the immediate children of DIR. Symlinks and junctions are shown as
files. With --recursive, list every file below DIR instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := core.NewPath(args[0])
			if !a.platform.IsDirectory(dir) {
				return notADirectory(dir)
			}

			var entries []entry
			if recursive {
				for _, p := range a.platform.GetAllFilesUnder(dir) {
					entries = append(entries, entry{Path: p.AsPrintablePath()})
				}
			} else {
				a.platform.ForEachDirectoryEntry(dir, core.DirectoryEntryFunc(func(p core.Path, isDirectory bool) {
					entries = append(entries, entry{Path: p.GetBaseName(), Directory: isDirectory})
				}))
			}
			sortEntries(entries)

			if a.jsonOutput {
				if entries == nil {
					entries = []entry{}
				}
				return a.printJSON(entries)
			}
			for _, e := range entries {
				if e.Directory {
					a.colorDir.Fprintf(a.stdout, "%s/\n", e.Path)
					continue
				}
				fmt.Fprintln(a.stdout, e.Path)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "list every file below DIR")
	return cmd
}
