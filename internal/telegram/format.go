package telegram

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/samber/lo"

	"github.com/PoluyanbIch/motivetype/internal/service"
)

const progressCells = 10

func progressBar(progress float64) string {
	filled := int(math.Round(progress * progressCells))
	filled = max(0, min(progressCells, filled))
	return strings.Repeat("▰", filled) + strings.Repeat("▱", progressCells-filled) +
		fmt.Sprintf(" %d%%", int(math.Round(progress*100)))
}

func formatQuestion(step, total int, progress float64, q service.Question) string {
	return fmt.Sprintf("%s\n\n❓ <b>Question %d/%d</b>\n\n%s",
		progressBar(progress), step+1, total, html.EscapeString(q.Prompt))
}

func formatProfile(p service.CategoryProfile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🏁 <b>%s</b>\n\n", html.EscapeString(p.Title))
	sb.WriteString(html.EscapeString(p.Description) + "\n\n")
	fmt.Fprintf(&sb, "💡 <b>Viewing Tips</b>\n<i>%s</i>\n\n", html.EscapeString(p.ViewingTips))
	writeSection(&sb, "Viewing Focus", p.ViewingFocus)
	writeSection(&sb, "Suggested Approach", p.SuggestedApproach)
	writeSection(&sb, "Key Questions to Consider", p.KeyConsiderations)
	return strings.TrimRight(sb.String(), "\n")
}

func writeSection(sb *strings.Builder, heading string, items []string) {
	fmt.Fprintf(sb, "<b>%s</b>\n", heading)
	for _, item := range items {
		sb.WriteString("• " + html.EscapeString(item) + "\n")
	}
	sb.WriteString("\n")
}

func formatTypes() string {
	titles := lo.Map(service.Categories(), func(c service.Category, _ int) string {
		return "• " + html.EscapeString(service.LookupProfile(c).Title)
	})
	return "ℹ️ <b>Motivation types</b>\n\n" +
		"Every visitor looks at art a little differently. The quiz places you in one of four types:\n\n" +
		strings.Join(titles, "\n")
}
