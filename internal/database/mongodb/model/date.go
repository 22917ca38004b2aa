package model

import (
	"time"

	"lovedj/internal/agent"
	"lovedj/internal/core"
)

// Ratings 雙方評分與平均
type Ratings struct {
	A       int     `json:"a" bson:"a"`
	B       int     `json:"b" bson:"b"`
	Average float64 `json:"average" bson:"average"`
}

// Usage 整場約會累計 token 用量
type Usage struct {
	PromptTokens     int `json:"promptTokens" bson:"promptTokens"`
	CompletionTokens int `json:"completionTokens" bson:"completionTokens"`
	TotalTokens      int `json:"totalTokens" bson:"totalTokens"`
	Requests         int `json:"requests" bson:"requests"`
}

type Date struct {
	ID       string          `json:"id" bson:"_id"`                          // uuid
	Status   core.DateStatus `json:"status" bson:"status"`                   // running / finished / failed
	Model    string          `json:"model" bson:"model"`                     // 實際使用的模型 id
	Provider string          `json:"provider" bson:"provider"`               // 路由到的 provider
	Theme    string          `json:"theme,omitempty" bson:"theme,omitempty"` // 約會場景
	Rounds   int             `json:"rounds" bson:"rounds"`                   // 回合數
	AgentA   agent.Agent     `json:"agentA" bson:"agentA"`                   // 開場方
	AgentB   agent.Agent     `json:"agentB" bson:"agentB"`                   // 回應方

	Turns      []agent.Turn `json:"turns,omitempty" bson:"turns,omitempty"`
	Ratings    *Ratings     `json:"ratings,omitempty" bson:"ratings,omitempty"`
	Usage      Usage        `json:"usage" bson:"usage"`
	Error      string       `json:"error,omitempty" bson:"error,omitempty"`
	ClientIP   string       `json:"-" bson:"clientIP,omitempty"`
	CreatedAt  time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt" bson:"updatedAt"`
	FinishedAt *time.Time   `json:"finishedAt,omitempty" bson:"finishedAt,omitempty"`
}
