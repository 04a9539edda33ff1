package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubGenerator struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func TestGenerateChatSuggestionUsesGeneratorText(t *testing.T) {
	gen := &stubGenerator{response: "Try setting up a shared repo this week."}
	svc := NewGeminiService(gen)

	suggestion := svc.GenerateChatSuggestion(context.Background(), "Want to build a chat app?", "Ada", "Linus", "")
	assert.Equal(t, "Try setting up a shared repo this week.", suggestion)

	// The prompt carries the conversation context verbatim.
	assert.Contains(t, gen.prompts[0], "Ada just sent a message to Linus")
	assert.Contains(t, gen.prompts[0], `"Want to build a chat app?"`)
}

func TestGenerateChatSuggestionFallsBackWithoutKey(t *testing.T) {
	svc := NewGeminiService(&stubGenerator{err: ErrNoAPIKey})

	suggestion := svc.GenerateChatSuggestion(context.Background(), "hello", "A", "B", "")
	assert.Contains(t, fallbackChatSuggestions, suggestion)
}

func TestGenerateChatSuggestionContextualFallbackOnError(t *testing.T) {
	svc := NewGeminiService(&stubGenerator{err: errors.New("rate limited")})

	suggestion := svc.GenerateChatSuggestion(context.Background(), "Let's build a project together", "A", "B", "")
	assert.Equal(t, "Consider creating a project roadmap and defining roles for each team member.", suggestion)

	suggestion = svc.GenerateChatSuggestion(context.Background(), "Can we schedule a call?", "A", "B", "")
	assert.Equal(t, "Great idea! Video calls are excellent for building team rapport and discussing complex topics.", suggestion)
}

func TestGenerateProjectSuggestionParsesJSON(t *testing.T) {
	gen := &stubGenerator{response: `{
		"title": "Habit Tracker",
		"description": "Track daily habits with streaks",
		"technologies": ["Go", "React"],
		"estimatedTime": "2-3 weeks",
		"reason": "Matches your stack"
	}`}
	svc := NewGeminiService(gen)

	suggestion := svc.GenerateProjectSuggestion(context.Background(), []string{"Go", "React"}, nil)
	assert.Equal(t, "Habit Tracker", suggestion.Title)
	assert.Equal(t, []string{"Go", "React"}, suggestion.Technologies)
	assert.Equal(t, "2-3 weeks", suggestion.EstimatedTime)
}

func TestGenerateProjectSuggestionStripsCodeFence(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"title\": \"Fenced\", \"description\": \"d\", \"technologies\": [\"Go\"], \"estimatedTime\": \"1 week\", \"reason\": \"r\"}\n```"}
	svc := NewGeminiService(gen)

	suggestion := svc.GenerateProjectSuggestion(context.Background(), []string{"Go"}, nil)
	assert.Equal(t, "Fenced", suggestion.Title)
}

func TestGenerateProjectSuggestionFallbackOnMalformedJSON(t *testing.T) {
	svc := NewGeminiService(&stubGenerator{response: "sure, here is an idea: build a todo app"})

	// Web skills steer the canned fallback.
	suggestion := svc.GenerateProjectSuggestion(context.Background(), []string{"React", "CSS"}, nil)
	assert.Equal(t, "Social Learning Platform", suggestion.Title)

	suggestion = svc.GenerateProjectSuggestion(context.Background(), []string{"Haskell"}, nil)
	assert.Equal(t, "Skill Matching Algorithm", suggestion.Title)
}

func TestGenerateProjectSuggestionFallbackWithoutKey(t *testing.T) {
	svc := NewGeminiService(&stubGenerator{err: ErrNoAPIKey})

	suggestion := svc.GenerateProjectSuggestion(context.Background(), []string{"Go"}, nil)
	titles := []string{fallbackProjects[0].Title, fallbackProjects[1].Title}
	assert.Contains(t, titles, suggestion.Title)
}

func TestGenerateAnswerKeywordFallbacksWithoutKey(t *testing.T) {
	svc := NewGeminiService(&stubGenerator{err: ErrNoAPIKey})

	answer := svc.GenerateAnswer(context.Background(), "How do I find a teammate?", "")
	assert.Equal(t, fallbackAnswers["teammate"], answer)

	answer = svc.GenerateAnswer(context.Background(), "What about the timeline?", "")
	assert.Equal(t, fallbackAnswers["timeline"], answer)

	answer = svc.GenerateAnswer(context.Background(), "Tell me something unrelated", "")
	assert.True(t, strings.HasPrefix(answer, "That's a great question!"))
}

func TestGenerateAnswerUsesGeneratorText(t *testing.T) {
	svc := NewGeminiService(&stubGenerator{response: "Start with a kickoff call."})

	answer := svc.GenerateAnswer(context.Background(), "How should we start?", "two React devs")
	assert.Equal(t, "Start with a kickoff call.", answer)
}

func TestGeminiClientRequiresAPIKey(t *testing.T) {
	client := &GeminiClient{}
	_, err := client.Generate(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}
