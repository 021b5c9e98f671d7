package render

import "gopkg.in/yaml.v3"

type yamlRenderer struct{}

func (r *yamlRenderer) Render(report *Report) ([]byte, error) {
	return yaml.Marshal(report)
}
