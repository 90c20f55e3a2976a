package service

import (
	"strings"

	"github.com/resume-system/backend/internal/model"
)

const (
	emptySummary   = "Motivated candidate with an eagerness to learn and contribute to real-world projects."
	noTitleSummary = "Dynamic professional with diverse experience across multiple domains."
)

// GenerateSummary builds a professional summary from achievement records. Pure
// string templating: no state, no network, same input always yields same output.
func GenerateSummary(achievements []model.AchievementInput) string {
	if len(achievements) == 0 {
		return emptySummary
	}

	var types []string
	seen := map[string]struct{}{}
	for _, a := range achievements {
		if a.Type == "" {
			continue
		}
		if _, ok := seen[a.Type]; ok {
			continue
		}
		seen[a.Type] = struct{}{}
		types = append(types, a.Type)
	}

	// Only the first three achievements make it into the summary.
	var titles []string
	for _, a := range achievements[:min(3, len(achievements))] {
		title := a.Title
		if title == "" {
			title = a.Name
		}
		if title != "" {
			titles = append(titles, title)
		}
	}

	if len(titles) == 0 {
		return noTitleSummary
	}

	var sb strings.Builder
	sb.WriteString("Accomplished professional with experience in ")
	sb.WriteString(strings.Join(titles, ", "))
	if len(types) > 0 {
		sb.WriteString(" including ")
		sb.WriteString(strings.Join(types, ", "))
	}
	sb.WriteString(". Proven track record of delivering results across internships, projects, and collaborative initiatives with strong skills in problem-solving, innovation, and teamwork.")
	return sb.String()
}

// OptimizeContent is a placeholder: it echoes the content with fixed suggestions.
func OptimizeContent(content string) model.OptimizeContentResponse {
	return model.OptimizeContentResponse{
		OptimizedContent: content,
		Suggestions: []string{
			"Consider adding quantifiable metrics",
			"Use action verbs to start bullet points",
			"Keep descriptions concise and impactful",
		},
	}
}
