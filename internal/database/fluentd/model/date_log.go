package model

// DateLog 一場約會結束時的摘要
type DateLog struct {
	DateID      string  `json:"date_id"`
	RequestID   string  `json:"request_id,omitempty"`
	ProjectName string  `json:"project_name,omitempty"`
	Status      string  `json:"status"`
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Theme       string  `json:"theme,omitempty"`
	Rounds      int     `json:"rounds"`
	Turns       int     `json:"turns"`
	RatingA     int     `json:"rating_a,omitempty"`
	RatingB     int     `json:"rating_b,omitempty"`
	Average     float64 `json:"average,omitempty"`
	TokensTotal int     `json:"tokens_total,omitempty"`
	DurationMs  int64   `json:"duration_ms"`
	Error       string  `json:"error,omitempty"`
	Version     string  `json:"version"`
	LoggedAt    string  `json:"logged_at"`
}
