package main

import (
	"fmt"

	"github.com/janekbaraniewski/ecomdash/internal/tui"
	"github.com/janekbaraniewski/ecomdash/internal/version"
	"github.com/spf13/cobra"
)

func newThemesCommand(themeFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := loadRuntime(*themeFlag, cmd.ErrOrStderr()); err != nil {
				return err
			}
			active := tui.ActiveTheme().Name
			out := cmd.OutOrStdout()
			for _, t := range tui.AvailableThemes() {
				marker := " "
				if t.Name == active {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s %s\n", marker, t.Icon, t.Name)
			}
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ecomdash "+version.String())
		},
	}
}
