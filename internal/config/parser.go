package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	blockerrors "github.com/blockkit/delimiter/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a tool configuration file from disk, validates it strictly, and
// returns the resulting model. Used by the CLI; hosts embedding the tool
// usually pass a Config straight through.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, blockerrors.NewParseError(path, 0, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, blockerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FromJSON decodes a host-supplied JSON configuration object. Both the
// current key names and the legacy Options-suffixed spellings are accepted;
// the current name wins when both are present. Absent or empty input yields
// an all-defaults configuration.
func FromJSON(raw []byte) (*Config, error) {
	cfg := &Config{}
	if len(raw) == 0 {
		return cfg, nil
	}

	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, blockerrors.NewParseError("config", 0, fmt.Errorf("expected a JSON object"))
	}

	if v := firstOf(doc, "styles", "styleOptions"); v.IsArray() {
		for _, item := range v.Array() {
			cfg.Styles = append(cfg.Styles, Style(item.String()))
		}
	}
	if v := firstOf(doc, "lineWidths", "lineWidthOptions"); v.IsArray() {
		for _, item := range v.Array() {
			cfg.LineWidths = append(cfg.LineWidths, int(item.Int()))
		}
	}
	if v := firstOf(doc, "lineThickness", "lineThicknessOptions"); v.IsArray() {
		for _, item := range v.Array() {
			cfg.LineThickness = append(cfg.LineThickness, int(item.Int()))
		}
	}

	cfg.DefaultStyle = Style(doc.Get("defaultStyle").String())
	cfg.DefaultLineWidth = int(doc.Get("defaultLineWidth").Int())
	cfg.DefaultLineThickness = int(doc.Get("defaultLineThickness").Int())
	cfg.SaveAll = doc.Get("saveAll").Bool()

	return cfg, nil
}

func firstOf(doc gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if v := doc.Get(key); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
