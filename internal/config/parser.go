package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	stepkiterrors "github.com/alexisbeaulieu97/stepkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFlow loads a flow document from disk and validates it. A relative
// tokens path is resolved against the flow's directory.
func ParseFlow(path string) (*Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stepkiterrors.NewParseError(path, 0, err)
	}

	flow, err := ParseFlowBytes(path, data)
	if err != nil {
		return nil, err
	}

	if flow.Tokens != "" && !filepath.IsAbs(flow.Tokens) {
		flow.Tokens = filepath.Join(filepath.Dir(path), flow.Tokens)
	}
	return flow, nil
}

// ParseFlowBytes decodes and validates an in-memory flow document. The
// path is only used in errors.
func ParseFlowBytes(path string, data []byte) (*Flow, error) {
	var flow Flow
	if err := yaml.Unmarshal(data, &flow); err != nil {
		return nil, stepkiterrors.NewParseError(path, ExtractLine(err), err)
	}

	if err := ValidateFlow(&flow); err != nil {
		return nil, err
	}

	return &flow, nil
}

// ExtractLine pulls the first line number out of a yaml.v3 error message.
// It returns 0 when the message carries none.
func ExtractLine(err error) int {
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
