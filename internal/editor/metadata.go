package editor

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	apiverPattern = regexp.MustCompile(`^\d+\.x$`)
)

// Metadata describes tool identity and host-facing capabilities.
type Metadata struct {
	Name              string
	Version           string
	APIVersion        string
	Description       string
	ReadOnlySupported bool
}

// Toolbox describes how the host's toolbox presents a tool.
type Toolbox struct {
	Icon  string
	Title string
}

// SanitizeConfig marks which saved fields may carry markup the host should
// sanitize. Fields absent from the map are treated as non-sanitized.
type SanitizeConfig map[string]bool

// Validate ensures metadata is well-formed.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("tool metadata requires a non-empty Name")
	}
	if strings.TrimSpace(m.Version) == "" {
		return fmt.Errorf("tool '%s' metadata requires Version", m.Name)
	}
	if !semverPattern.MatchString(m.Version) {
		return fmt.Errorf("tool '%s' has invalid Version '%s' (expected format: X.Y.Z)", m.Name, m.Version)
	}
	if strings.TrimSpace(m.APIVersion) == "" {
		return fmt.Errorf("tool '%s' metadata requires APIVersion", m.Name)
	}
	if !apiverPattern.MatchString(m.APIVersion) {
		return fmt.Errorf("tool '%s' has invalid APIVersion '%s' (expected format: N.x)", m.Name, m.APIVersion)
	}
	return nil
}
