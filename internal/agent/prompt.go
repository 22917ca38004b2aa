package agent

import (
	"strings"
	"text/template"
)

// Guidelines 對話守則，作為每位 agent 的特質之一
const Guidelines = `Speak casually in first person as if you're on a real first date.

• After the opening turn, do NOT begin with "Hey" or "Nice to meet you" again.
• Acknowledge your date's last message *without repeating their phrases verbatim*.
• Anchor the reply in ONE concrete sensory or specific detail (spice, song, venue).
• Introduce a playful tease or mild disagreement once during the conversation, resolve it warmly.
• Vary rhythm: if you asked the last question, feel free NOT to end with one this turn. Aim for about every other turn without a question.
• Use one vivid image per reply, avoid stacking multiple metaphors.
• Re-use ("callback") a word or small joke from 1–2 turns ago at least once.
• Mix sentence lengths; single-word interjections ("Seriously?") are welcome.
• **Hard cap: 80 words per reply.**`

var (
	systemTmpl = template.Must(template.New("system").Parse(
		"You are answering as a person with these traits.\n" +
			"persona: {{ .Persona }}\n" +
			"pronouns: {{ .Pronoun }}\n" +
			"guidelines: {{ .Guidelines }}"))

	openingTmpl = template.Must(template.New("opening").Parse(
		"You are {{ .Persona }} (using {{ .Pronoun }} pronouns) on a first date. " +
			"Start with a warm greeting, mention a brief sensory detail about the setting or your day, " +
			"share ONE short personal detail, then ask an inviting open-ended question. " +
			"≤ 35 words. DO NOT include your name; it will be added automatically."))

	responseTmpl = template.Must(template.New("response").Parse(
		"You are {{ .Self.Persona }} (using {{ .Self.Pronoun }} pronouns) on a first date with {{ .Partner.Persona }}.\n\n" +
			"{{ .Chat }}\n\n" +
			"Respond naturally in 2–3 sentences (≤ 80 words): " +
			"1) briefly react to your date's latest message (without parroting), " +
			"2) share one concrete or sensory detail or feeling, " +
			"3) optionally end with an open-ended question **if you did not ask the last question**. " +
			"Introduce a playful tease or callback occasionally. " +
			"DO NOT include your name at the beginning."))

	ratingTmpl = template.Must(template.New("rating").Parse(
		"{{ .History }}\n\n" +
			"On a scale of 1–10, how would you rate this date? " +
			"(1 = Terrible • 10 = Amazing)\n" +
			"IMPORTANT: Respond with just the number 1-10. No words or explanations."))
)

// Prompt 一次模型呼叫的 system + user 內容
type Prompt struct {
	System string
	User   string
}

// SystemPrompt agent 的特質
func (a Agent) SystemPrompt() string {
	return render(systemTmpl, a)
}

// OpeningPrompt 開場白
func OpeningPrompt(self Agent) Prompt {
	return Prompt{System: self.SystemPrompt(), User: render(openingTmpl, self)}
}

// ResponsePrompt 依目前對話紀錄回應
func ResponsePrompt(self, partner Agent, history string) Prompt {
	return Prompt{
		System: self.SystemPrompt(),
		User: render(responseTmpl, struct {
			Self, Partner Agent
			Chat          string
		}{self, partner, strings.TrimSpace(history)}),
	}
}

// RatingPrompt 約會結束後的評分
func RatingPrompt(self Agent, history string) Prompt {
	return Prompt{
		System: self.SystemPrompt(),
		User:   render(ratingTmpl, struct{ History string }{history}),
	}
}

// 模板在 init 時已驗證，欄位皆為字串，執行不會失敗
func render(t *template.Template, data any) string {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}
