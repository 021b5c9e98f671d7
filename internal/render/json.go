package render

import "encoding/json"

type jsonRenderer struct{}

func (r *jsonRenderer) Render(report *Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
