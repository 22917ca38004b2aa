package dto

import (
	"time"

	"lovedj/internal/agent"
	"lovedj/internal/database/mongodb/model"
)

// 一方的角色設定，空欄位使用預設角色
type ProfileDto struct {
	Name    string        `json:"name" binding:"omitempty,max=40" example:"Alex"`
	Persona string        `json:"persona" binding:"omitempty,max=1000"`
	Pronoun agent.Pronoun `json:"pronoun" binding:"omitempty,oneof=he/him she/her they/them" example:"they/them"`
}

func (p ProfileDto) Profile() agent.Profile {
	return agent.Profile{Name: p.Name, Persona: p.Persona, Pronoun: p.Pronoun}
}

// 開始一場約會
type CreateDateDto struct {
	ProfileA ProfileDto `json:"profileA"`
	ProfileB ProfileDto `json:"profileB"`
	Rounds   int        `json:"rounds" binding:"omitempty,min=1" example:"3"`       // 空值使用預設回合數
	Model    string     `json:"model" binding:"omitempty,max=200" example:"gpt-4o"` // 模型 id 或 "<model> [<provider>]"
	Provider string     `json:"provider" binding:"omitempty,oneof=openai google mock"`
	Theme    string     `json:"theme" binding:"omitempty,max=200" example:"a rooftop bar"`
}

// 約會列表查詢
type ListDatesQueryDto struct {
	Page int `form:"page" binding:"omitempty,min=0"`
	Size int `form:"size" binding:"omitempty,min=1,max=100"`
}

type RatingsDto struct {
	A       int     `json:"a"`
	B       int     `json:"b"`
	Average float64 `json:"average"`
}

type UsageDto struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
	Requests         int `json:"requests"`
}

type DateResponseDto struct {
	ID         string       `json:"id"`
	Status     string       `json:"status"`
	Model      string       `json:"model"`
	Provider   string       `json:"provider"`
	Theme      string       `json:"theme,omitempty"`
	Rounds     int          `json:"rounds"`
	AgentA     agent.Agent  `json:"agentA"`
	AgentB     agent.Agent  `json:"agentB"`
	Turns      []agent.Turn `json:"turns,omitempty"`
	Ratings    *RatingsDto  `json:"ratings,omitempty"`
	Usage      UsageDto     `json:"usage"`
	Error      string       `json:"error,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	FinishedAt *time.Time   `json:"finishedAt,omitempty"`
}

func NewDateResponseDto(d *model.Date) DateResponseDto {
	out := DateResponseDto{
		ID:       d.ID,
		Status:   string(d.Status),
		Model:    d.Model,
		Provider: d.Provider,
		Theme:    d.Theme,
		Rounds:   d.Rounds,
		AgentA:   d.AgentA,
		AgentB:   d.AgentB,
		Turns:    d.Turns,
		Usage: UsageDto{
			PromptTokens:     d.Usage.PromptTokens,
			CompletionTokens: d.Usage.CompletionTokens,
			TotalTokens:      d.Usage.TotalTokens,
			Requests:         d.Usage.Requests,
		},
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
		FinishedAt: d.FinishedAt,
	}
	if d.Ratings != nil {
		out.Ratings = &RatingsDto{A: d.Ratings.A, B: d.Ratings.B, Average: d.Ratings.Average}
	}
	return out
}

func NewDateResponseDtos(dates []*model.Date) []DateResponseDto {
	out := make([]DateResponseDto, 0, len(dates))
	for _, d := range dates {
		out = append(out, NewDateResponseDto(d))
	}
	return out
}
