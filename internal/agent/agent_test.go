package agent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	a := New(SideA, Profile{}, "")
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, DefaultPersonaA, a.Persona)
	assert.Equal(t, PronounHeHim, a.Pronoun)
	assert.Equal(t, Guidelines, a.Guidelines)

	b := New(SideB, Profile{Name: "  Sam ", Pronoun: "xe/xem"}, "")
	assert.Equal(t, "Sam", b.Name)
	assert.Equal(t, DefaultPersonaB, b.Persona)
	assert.Equal(t, PronounSheHer, b.Pronoun)
}

func TestNew_ThemePrefixesGuidelines(t *testing.T) {
	a := New(SideA, Profile{Persona: "chef"}, " a rooftop bar ")
	assert.True(t, strings.HasPrefix(a.Guidelines, "You are on a date at a rooftop bar. Speak casually"))
	assert.Equal(t, "chef", a.Persona)
}

func TestPronounEmoji(t *testing.T) {
	assert.Equal(t, "👨", PronounHeHim.Emoji())
	assert.Equal(t, "👩", PronounSheHer.Emoji())
	assert.Equal(t, "🧑", PronounTheyThem.Emoji())
	assert.Equal(t, "🧑", Pronoun("").Emoji())
}

func TestPrompts(t *testing.T) {
	a := New(SideA, Profile{Name: "Alex", Persona: "a jazz pianist", Pronoun: PronounTheyThem}, "")
	b := New(SideB, Profile{Name: "Bea", Persona: "a marine biologist"}, "")

	open := OpeningPrompt(a)
	assert.Contains(t, open.User, "You are a jazz pianist (using they/them pronouns) on a first date.")
	assert.Contains(t, open.User, "≤ 35 words")
	assert.Contains(t, open.System, "persona: a jazz pianist")
	assert.Contains(t, open.System, "Hard cap: 80 words")

	var tr Transcript
	tr.Add(0, a, "Hi there!")
	resp := ResponsePrompt(b, a, tr.History())
	assert.Contains(t, resp.User, "You are a marine biologist (using she/her pronouns) on a first date with a jazz pianist.")
	assert.Contains(t, resp.User, "\n\nAlex: Hi there!\n\n")

	rate := RatingPrompt(a, tr.History())
	assert.True(t, strings.HasPrefix(rate.User, "\nAlex: Hi there!\n\n"))
	assert.Contains(t, rate.User, "Respond with just the number 1-10")
}

func TestTranscript(t *testing.T) {
	a := New(SideA, Profile{Name: "Alex"}, "")
	b := New(SideB, Profile{Name: "Bea"}, "")

	var tr Transcript
	tr.Add(0, a, " Hello ")
	turn := tr.Add(1, b, "Hi!")

	assert.Equal(t, 1, turn.Index)
	assert.Equal(t, SideB, turn.Side)
	assert.Equal(t, "\nAlex: Hello\nBea: Hi!", tr.History())
	require.Len(t, tr.Turns(), 2)
	assert.Equal(t, "Hello", tr.Turns()[0].Text)
}
