// Package agent 約會雙方的角色設定、提示詞與評分解析
package agent

import "strings"

// Pronoun 代名詞選項
type Pronoun string

const (
	PronounHeHim    Pronoun = "he/him"
	PronounSheHer   Pronoun = "she/her"
	PronounTheyThem Pronoun = "they/them"
)

// Pronouns 表單選項順序
var Pronouns = []Pronoun{PronounHeHim, PronounSheHer, PronounTheyThem}

func (p Pronoun) Valid() bool {
	switch p {
	case PronounHeHim, PronounSheHer, PronounTheyThem:
		return true
	}
	return false
}

// Emoji 聊天泡泡頭像
func (p Pronoun) Emoji() string {
	switch p {
	case PronounHeHim:
		return "👨"
	case PronounSheHer:
		return "👩"
	default:
		return "🧑"
	}
}

// Side 發言方
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

const (
	DefaultPersonaA = "28-year-old product manager in San Francisco. Loves jazz, weekend rock-climbing, " +
		"and hunting for the best under-the-radar restaurants. Looking for an adventurous partner " +
		"with a playful sense of humour."
	DefaultPersonaB = "30-year-old PhD student in literature. Avid reader who practises yoga to unwind and is a committed vegan. " +
		"Enjoys deep conversations, quiet coffee shops, and authenticity in relationships."
)

// Profile 使用者在表單填入的資料，空欄位會用預設值補上
type Profile struct {
	Name    string  `json:"name" bson:"name" validate:"max=40"`
	Persona string  `json:"persona" bson:"persona" validate:"max=1000"`
	Pronoun Pronoun `json:"pronoun" bson:"pronoun" validate:"omitempty,oneof=he/him she/her they/them"`
}

// DefaultProfile 各方的預設角色
func DefaultProfile(side Side) Profile {
	if side == SideB {
		return Profile{Name: string(SideB), Persona: DefaultPersonaB, Pronoun: PronounSheHer}
	}
	return Profile{Name: string(SideA), Persona: DefaultPersonaA, Pronoun: PronounHeHim}
}

// Agent 參與約會的一方
type Agent struct {
	Side       Side    `json:"side" bson:"side"`
	Name       string  `json:"name" bson:"name"`
	Persona    string  `json:"persona" bson:"persona"`
	Pronoun    Pronoun `json:"pronoun" bson:"pronoun"`
	Guidelines string  `json:"-" bson:"-"`
}

// New 以 Profile 建立 Agent；有主題時在對話守則前加上場景
func New(side Side, p Profile, theme string) Agent {
	def := DefaultProfile(side)

	a := Agent{
		Side:       side,
		Name:       strings.TrimSpace(p.Name),
		Persona:    strings.TrimSpace(p.Persona),
		Pronoun:    p.Pronoun,
		Guidelines: Guidelines,
	}
	if a.Name == "" {
		a.Name = def.Name
	}
	if a.Persona == "" {
		a.Persona = def.Persona
	}
	if !a.Pronoun.Valid() {
		a.Pronoun = def.Pronoun
	}
	if theme = strings.TrimSpace(theme); theme != "" {
		a.Guidelines = "You are on a date at " + theme + ". " + a.Guidelines
	}
	return a
}

// Emoji 頭像
func (a Agent) Emoji() string { return a.Pronoun.Emoji() }
