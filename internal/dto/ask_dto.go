package dto

type AskRequest struct {
	Question string `json:"question" validate:"required,min=1,max=500"`
}

type AskResponse struct {
	Answer   string `json:"answer"`
	Intent   string `json:"intent"`
	Score    int    `json:"score"`
	Source   string `json:"source"` // "generated" | "fallback" | "unknown_intent"
	RowCount int    `json:"row_count"`
}

type IntentInfoResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
