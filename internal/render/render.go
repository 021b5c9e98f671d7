package render

import (
	"fmt"

	"github.com/PoluyanbIch/motivetype/internal/service"
)

// Report is the serialisable form of a finished questionnaire.
type Report struct {
	Type    string                  `json:"type" yaml:"type"`
	Scores  map[string]int          `json:"scores" yaml:"scores"`
	Profile service.CategoryProfile `json:"profile" yaml:"profile"`
}

func NewReport(o service.Outcome) *Report {
	return &Report{
		Type:    o.Winner.String(),
		Scores:  o.Scores.Map(),
		Profile: o.Profile,
	}
}

// Renderer formats a Report into bytes for output.
type Renderer interface {
	Render(report *Report) ([]byte, error)
}

// NewRenderer returns a Renderer for the given format string.
// Supported formats: "text" (default), "md", "json", "yaml".
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text", "":
		return &textRenderer{}, nil
	case "md":
		return &markdownRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	case "yaml":
		return &yamlRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: supported formats are text, md, json, yaml", format)
	}
}
