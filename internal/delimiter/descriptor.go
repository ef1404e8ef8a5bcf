package delimiter

import (
	"github.com/blockkit/delimiter/internal/editor"
	"github.com/blockkit/delimiter/internal/icons"
	"github.com/blockkit/delimiter/internal/logger"
)

// ToolName identifies the delimiter tool in a host registry.
const ToolName = "delimiter"

// Metadata returns the tool's registry descriptor.
func Metadata() editor.Metadata {
	return editor.Metadata{
		Name:              ToolName,
		Version:           "2.0.1",
		APIVersion:        "2.x",
		Description:       "Visual divider between content blocks",
		ReadOnlySupported: true,
	}
}

// ToolboxEntry describes how the toolbox presents the tool.
func ToolboxEntry() editor.Toolbox {
	return editor.Toolbox{Icon: icons.Toolbox, Title: "Delimiter"}
}

// Sanitize marks every saved field as tool-controlled enums and numbers;
// nothing carries markup the host needs to clean.
func Sanitize() editor.SanitizeConfig {
	return editor.SanitizeConfig{
		"style":         false,
		"lineWidth":     false,
		"lineThickness": false,
	}
}

// Register wires the delimiter tool into a host registry.
func Register(r *editor.Registry, log *logger.Logger) error {
	return r.Register(editor.Registration{
		Metadata: Metadata(),
		Toolbox:  ToolboxEntry(),
		Sanitize: Sanitize(),
		Factory:  Factory(log),
	})
}
