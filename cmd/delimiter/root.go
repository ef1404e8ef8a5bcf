package main

import (
	"github.com/spf13/cobra"

	"github.com/blockkit/delimiter/internal/editor"
	"github.com/blockkit/delimiter/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd(registry *editor.Registry, log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "delimiter",
		Short:         "Delimiter renders divider blocks for block editors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.verbose || log == nil {
				return nil
			}
			verbose, err := logger.New(logger.Options{Level: "debug", HumanReadable: true})
			if err != nil {
				return err
			}
			*log = *verbose
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a tool configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags, registry))
	cmd.AddCommand(newPreviewCmd(flags, log))
	cmd.AddCommand(newToolsCmd(registry))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
