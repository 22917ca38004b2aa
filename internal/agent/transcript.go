package agent

import "strings"

// Turn 一句發言
type Turn struct {
	Index   int    `json:"index" bson:"index"`
	Round   int    `json:"round" bson:"round"`
	Side    Side   `json:"side" bson:"side"`
	Speaker string `json:"speaker" bson:"speaker"`
	Text    string `json:"text" bson:"text"`
}

// Transcript 對話紀錄；History 為每句 "\n<speaker>: <text>" 串接，供下一輪提示詞使用
type Transcript struct {
	turns   []Turn
	history strings.Builder
}

func (t *Transcript) Add(round int, speaker Agent, text string) Turn {
	turn := Turn{
		Index:   len(t.turns),
		Round:   round,
		Side:    speaker.Side,
		Speaker: speaker.Name,
		Text:    strings.TrimSpace(text),
	}
	t.turns = append(t.turns, turn)
	t.history.WriteString("\n" + turn.Speaker + ": " + turn.Text)
	return turn
}

func (t *Transcript) History() string { return t.history.String() }

func (t *Transcript) Turns() []Turn {
	out := make([]Turn, len(t.turns))
	copy(out, t.turns)
	return out
}

func (t *Transcript) Len() int { return len(t.turns) }
