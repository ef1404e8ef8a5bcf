package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blockkit/delimiter/internal/editor"
)

func newToolsCmd(registry *editor.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List registered block tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range registry.Names() {
				reg, ok := registry.Lookup(name)
				if !ok {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					titleStyle.Render(reg.Toolbox.Title), name, reg.Metadata.Version)
			}
			return nil
		},
	}

	return cmd
}
