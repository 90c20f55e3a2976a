package model

// AchievementInput is the loosely-shaped achievement record accepted by the
// summary generator. Title wins over Name when both are present.
type AchievementInput struct {
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type GenerateSummaryRequest struct {
	Achievements []AchievementInput `json:"achievements"`
}

type GenerateSummaryResponse struct {
	Summary string `json:"summary"`
}

type OptimizeContentRequest struct {
	Content string `json:"content"`
}

type OptimizeContentResponse struct {
	OptimizedContent string   `json:"optimizedContent"`
	Suggestions      []string `json:"suggestions"`
}
