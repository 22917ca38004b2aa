package model

// AIUsageLog 每次模型呼叫的 token 用量
type AIUsageLog struct {
	RequestID        string `bson:"request_id,omitempty" json:"request_id"`
	DateID           string `bson:"date_id,omitempty" json:"date_id,omitempty"`
	Speaker          string `bson:"speaker,omitempty" json:"speaker,omitempty"`
	ProjectName      string `bson:"project_name,omitempty" json:"project_name,omitempty"`
	Provider         string `bson:"provider" json:"provider"`
	Model            string `bson:"model,omitempty" json:"model,omitempty"`
	Endpoint         string `bson:"endpoint" json:"endpoint"`
	TokensPrompt     int    `bson:"tokens_prompt,omitempty" json:"tokens_prompt,omitempty"`
	TokensCompletion int    `bson:"tokens_completion,omitempty" json:"tokens_completion,omitempty"`
	TokensTotal      int    `bson:"tokens_total,omitempty" json:"tokens_total,omitempty"`
	Version          string `bson:"version" json:"version"`
	LoggedAt         string `bson:"logged_at" json:"logged_at"`
}
