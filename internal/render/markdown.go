package render

import (
	"bytes"
	"text/template"

	"github.com/PoluyanbIch/motivetype/internal/service"
)

type markdownRenderer struct{}

var mdTemplate = template.Must(template.New("profile").Parse(`# {{ .Title }}

{{ .Description }}

> **Viewing Tips**
> {{ .ViewingTips }}

## Viewing Focus
{{ range .ViewingFocus }}
- {{ . }}{{ end }}

## Suggested Approach
{{ range .SuggestedApproach }}
- {{ . }}{{ end }}

## Key Questions to Consider
{{ range .KeyConsiderations }}
- {{ . }}{{ end }}
`))

func (r *markdownRenderer) Render(report *Report) ([]byte, error) {
	return Markdown(report.Profile)
}

// Markdown renders a profile as a markdown document.
func Markdown(p service.CategoryProfile) ([]byte, error) {
	var buf bytes.Buffer
	if err := mdTemplate.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
