package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blockkit/delimiter/internal/config"
	"github.com/blockkit/delimiter/internal/delimiter"
	"github.com/blockkit/delimiter/internal/editor"
	"github.com/blockkit/delimiter/internal/render"
)

func newRenderCmd(flags *rootFlags, registry *editor.Registry) *cobra.Command {
	var (
		data    string
		columns int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a delimiter block once and print its saved state",
		RunE: func(cmd *cobra.Command, args []string) error {
			rawConfig, err := loadConfigJSON(flags.configPath)
			if err != nil {
				return err
			}

			tool, err := registry.Create(delimiter.ToolName, editor.Params{
				Config: rawConfig,
				Data:   json.RawMessage(data),
			})
			if err != nil {
				return err
			}

			renderer := render.NewTextRenderer(detectColumns(columns))
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(tool.Render()))
			fmt.Fprintln(cmd.OutOrStdout(), string(tool.Save()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "{}", "Block data JSON")
	cmd.Flags().IntVar(&columns, "columns", 0, "Container width in columns (0 = detect)")

	return cmd
}

// loadConfigJSON reads an optional YAML configuration file and re-encodes it
// as the JSON object the tool factory consumes.
func loadConfigJSON(path string) (json.RawMessage, error) {
	if path == "" {
		return nil, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return json.Marshal(cfg)
}

func detectColumns(columns int) int {
	if columns > 0 {
		return columns
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}

	// Renderer default applies.
	return 0
}
