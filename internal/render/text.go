package render

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/PoluyanbIch/motivetype/internal/service"
)

type textRenderer struct{}

func (r *textRenderer) Render(report *Report) ([]byte, error) {
	p := report.Profile

	var sb strings.Builder
	sb.WriteString(p.Title + "\n")
	sb.WriteString(strings.Repeat("=", len(p.Title)) + "\n\n")
	sb.WriteString(p.Description + "\n\n")
	sb.WriteString("Viewing Tips\n  " + p.ViewingTips + "\n\n")
	writeList(&sb, "Viewing Focus", p.ViewingFocus)
	writeList(&sb, "Suggested Approach", p.SuggestedApproach)
	writeList(&sb, "Key Questions to Consider", p.KeyConsiderations)

	sb.WriteString("Scores\n")
	for _, c := range service.Categories() {
		fmt.Fprintf(&sb, "  %-18s %d\n", c.String(), report.Scores[c.String()])
	}
	return []byte(sb.String()), nil
}

func writeList(sb *strings.Builder, heading string, items []string) {
	sb.WriteString(heading + "\n")
	sb.WriteString(strings.Join(lo.Map(items, func(item string, _ int) string {
		return "  - " + item
	}), "\n"))
	sb.WriteString("\n\n")
}
