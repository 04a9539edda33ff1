package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"collabmate_server/models"
)

// TextGenerator is the single call the rest of the app makes against the
// generative-language API. Scoring never depends on it.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrNoAPIKey is returned by GeminiClient when no API key is configured.
var ErrNoAPIKey = errors.New("gemini api key not configured")

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// NewGeminiClientFromEnv reads GEMINI_API_KEY; an empty key is allowed and
// makes every Generate call fail fast so callers fall back to canned text.
func NewGeminiClientFromEnv() *GeminiClient {
	return &GeminiClient{
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      "gemini-2.5-flash",
		BaseURL:    defaultGeminiBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate sends a single prompt and returns the trimmed response text
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c.APIKey == "" {
		return "", ErrNoAPIKey
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		strings.TrimRight(c.BaseURL, "/"), c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini response contained no candidates")
	}

	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// GeminiService wraps the text generator with CollabMate's prompt templates
// and deterministic fallbacks. Every method degrades to canned copy when the
// generator is unavailable, so AI features never surface an error to users.
type GeminiService struct {
	Generator TextGenerator
}

func NewGeminiService(generator TextGenerator) *GeminiService {
	return &GeminiService{Generator: generator}
}

var fallbackChatSuggestions = []string{
	"Great idea! This could be a perfect collaboration opportunity.",
	"I suggest scheduling a video call to discuss project details and timeline.",
	"Consider creating a shared GitHub repository to start collaborating on code.",
	"This project aligns well with both of your skill sets and interests.",
	"Have you considered using agile methodology for this project?",
	"What's your preferred tech stack for this collaboration?",
}

// GenerateChatSuggestion produces a short collaboration hint for a message
// exchanged between two users.
func (s *GeminiService) GenerateChatSuggestion(ctx context.Context, userMessage, senderName, receiverName, extraContext string) string {
	prompt := fmt.Sprintf(`
You are CollabMate AI, an intelligent assistant helping students and developers collaborate on projects.

Context:
- %s just sent a message to %s
- Message: "%s"
- This is a professional collaboration platform for finding teammates and working on projects together
%s
Generate a helpful, encouraging, and actionable suggestion that could help facilitate their collaboration. The suggestion should be:
- Professional and friendly
- Focused on collaboration and project success
- Actionable (suggesting next steps, tools, or approaches)
- Brief (1-2 sentences max)
- Relevant to the message content

Respond only with the suggestion, no additional formatting or explanation.
`, senderName, receiverName, userMessage, contextLine(extraContext))

	suggestion, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		if !errors.Is(err, ErrNoAPIKey) {
			log.Printf("Failed to generate chat suggestion: %v", err)
			return chatSuggestionFallback(userMessage)
		}
		return fallbackChatSuggestions[rand.Intn(len(fallbackChatSuggestions))]
	}
	if suggestion == "" {
		return "Consider discussing your project goals and timeline to ensure successful collaboration."
	}
	return suggestion
}

// chatSuggestionFallback picks a canned suggestion keyed on message content
func chatSuggestionFallback(userMessage string) string {
	message := strings.ToLower(userMessage)
	switch {
	case strings.Contains(message, "project") || strings.Contains(message, "build"):
		return "Consider creating a project roadmap and defining roles for each team member."
	case strings.Contains(message, "meet") || strings.Contains(message, "call"):
		return "Great idea! Video calls are excellent for building team rapport and discussing complex topics."
	case strings.Contains(message, "code") || strings.Contains(message, "github"):
		return "Setting up a shared repository with clear contribution guidelines will help streamline your workflow."
	default:
		return "This sounds like a great opportunity for collaboration. What are your next steps?"
	}
}

var fallbackProjects = []models.ProjectSuggestion{
	{
		Title:         "AI Resume Parser",
		Description:   "Build a tool that extracts and categorizes information from resumes using NLP",
		Technologies:  []string{"Python", "NLP", "Flask"},
		EstimatedTime: "2-3 weeks",
		Reason:        "Suggested based on your technical skills and current market demand",
	},
	{
		Title:         "Collaborative Task Manager",
		Description:   "Create a real-time task management app for team collaboration",
		Technologies:  []string{"React", "Node.js", "Socket.io"},
		EstimatedTime: "3-4 weeks",
		Reason:        "Perfect for showcasing full-stack development skills",
	},
}

// GenerateProjectSuggestion asks for a portfolio project idea matching the
// user's skills. The model is instructed to answer in strict JSON; anything
// unparseable falls back to a skills-based canned suggestion.
func (s *GeminiService) GenerateProjectSuggestion(ctx context.Context, skills, interests []string) models.ProjectSuggestion {
	interestLine := ""
	if len(interests) > 0 {
		interestLine = "Interests: " + strings.Join(interests, ", ")
	}
	prompt := fmt.Sprintf(`
Generate a project suggestion for a developer/student with these skills: %s
%s

Create a project that:
- Utilizes their existing skills
- Is achievable in 2-6 weeks
- Would be impressive for a portfolio
- Encourages collaboration with others
- Addresses a real-world problem

Respond in this exact JSON format:
{
  "title": "Project Name",
  "description": "Brief description of what the project does",
  "technologies": ["tech1", "tech2", "tech3"],
  "estimatedTime": "X-Y weeks",
  "reason": "Why this project is suggested for this person"
}
`, strings.Join(skills, ", "), interestLine)

	text, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		if !errors.Is(err, ErrNoAPIKey) {
			log.Printf("Failed to generate project suggestion: %v", err)
			return projectSuggestionFallback(skills)
		}
		return fallbackProjects[rand.Intn(len(fallbackProjects))]
	}

	var suggestion models.ProjectSuggestion
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &suggestion); err != nil || suggestion.Title == "" {
		log.Printf("Failed to parse project suggestion JSON: %v", err)
		return projectSuggestionFallback(skills)
	}
	return suggestion
}

// projectSuggestionFallback returns a canned idea biased by skill set
func projectSuggestionFallback(skills []string) models.ProjectSuggestion {
	webSkills := map[string]struct{}{
		"react": {}, "javascript": {}, "html": {}, "css": {}, "node.js": {},
	}
	hasWebSkills := false
	for _, skill := range skills {
		if _, ok := webSkills[strings.ToLower(skill)]; ok {
			hasWebSkills = true
			break
		}
	}

	if hasWebSkills {
		return models.ProjectSuggestion{
			Title:         "Social Learning Platform",
			Description:   "Build a platform where students can share knowledge and collaborate on projects",
			Technologies:  []string{"React", "Node.js", "MongoDB"},
			EstimatedTime: "4-5 weeks",
			Reason:        "Leverages your web development skills and addresses educational collaboration",
		}
	}
	return models.ProjectSuggestion{
		Title:         "Skill Matching Algorithm",
		Description:   "Create an algorithm that matches people based on complementary skills",
		Technologies:  []string{"Python", "Machine Learning", "APIs"},
		EstimatedTime: "3-4 weeks",
		Reason:        "Great for showcasing algorithmic thinking and problem-solving skills",
	}
}

var fallbackAnswers = map[string]string{
	"teammate":      "When looking for teammates, focus on complementary skills rather than identical ones. Look for people who share your passion for the project but bring different expertise. Good communication and similar work schedules are also crucial for successful collaboration.",
	"project":       "Great projects solve real problems and use technologies you're excited to learn. Start with something achievable in 2-4 weeks, ensure it showcases your skills, and consider what would be valuable for your portfolio. Don't be afraid to put your own spin on existing ideas!",
	"collaboration": "Effective collaboration requires clear communication, defined roles, and regular check-ins. Use tools like Slack for daily communication, GitHub for code collaboration, and project management tools like Trello or Notion to track progress.",
	"timeline":      "Break your project into weekly milestones. Week 1: Planning and setup, Week 2-3: Core development, Week 4: Testing and polish. Always add buffer time for unexpected challenges, and communicate early if you're falling behind schedule.",
}

// GenerateAnswer handles free-form Q&A about collaboration and teamwork
func (s *GeminiService) GenerateAnswer(ctx context.Context, question, extraContext string) string {
	prompt := fmt.Sprintf(`
You are Gemini AI, an intelligent assistant for CollabMate - a platform that helps developers and students find teammates and collaborate on projects.

User Question: "%s"
%s
Provide a helpful, actionable response that:
- Is specific to collaboration, teamwork, and project development
- Offers practical advice and next steps
- Is encouraging and supportive
- Is concise but comprehensive (2-4 sentences)
- Relates to the CollabMate platform when relevant

Focus on topics like:
- Finding and working with teammates
- Project planning and management
- Technical collaboration best practices
- Communication and workflow optimization
- Skill development and learning
- Career advice for developers/students

Respond in a friendly, professional tone as if you're a knowledgeable mentor.
`, question, contextLine(extraContext))

	answer, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		if !errors.Is(err, ErrNoAPIKey) {
			log.Printf("Failed to generate answer: %v", err)
			return answerFallback(question)
		}
		questionLower := strings.ToLower(question)
		for key, response := range fallbackAnswers {
			if strings.Contains(questionLower, key) {
				return response
			}
		}
		return "That's a great question! While I'm having trouble connecting to my full knowledge base right now, I'd recommend discussing this with your teammates or checking out resources like GitHub, Stack Overflow, or developer communities for detailed guidance."
	}
	if answer == "" {
		return "I'd be happy to help! Could you provide a bit more detail about what specific aspect you'd like guidance on?"
	}
	return answer
}

// answerFallback picks a canned answer keyed on question content
func answerFallback(question string) string {
	questionLower := strings.ToLower(question)
	switch {
	case strings.Contains(questionLower, "team") || strings.Contains(questionLower, "collaborate"):
		return "Successful collaboration starts with clear communication and shared goals. Make sure everyone understands their role, set up regular check-ins, and use collaborative tools like GitHub for code sharing and Slack for communication."
	case strings.Contains(questionLower, "project") || strings.Contains(questionLower, "idea"):
		return "Great projects solve real problems and showcase your skills. Start with something achievable, consider your target audience, and don't be afraid to iterate on your initial idea based on feedback from potential users."
	case strings.Contains(questionLower, "skill") || strings.Contains(questionLower, "learn"):
		return "Focus on building projects that stretch your current skills while being achievable. Pair programming with teammates is a great way to learn, and don't hesitate to ask questions - the development community is generally very helpful!"
	default:
		return "That's an interesting question! For the best guidance, I'd recommend discussing this with experienced developers in your network or checking out resources like developer communities, documentation, and tutorials specific to your technology stack."
	}
}

func contextLine(extra string) string {
	if extra == "" {
		return ""
	}
	return "- Additional context: " + extra + "\n"
}

// stripCodeFence removes a surrounding ```json fence if the model added one
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
