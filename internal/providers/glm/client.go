// Package glm is the optional content-title enrichment client for the
// GLM chat-completions API. It is only used when an API key is
// configured; every failure path falls back to the rule-based
// decomposer, so the client returns errors and never guesses.
package glm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"catalog-gen/internal/httpx"
)

const defaultBaseURL = "https://open.bigmodel.cn/api/paas/v4"

// ErrNoTitles is returned when the model response contains no usable
// title list.
var ErrNoTitles = errors.New("glm: response contains no titles")

type Client struct {
	BaseURL string
	APIKey  string
	Model   string
	HTTP    *http.Client
	Retry   httpx.RetryConfig
}

func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   "glm-4.6",
		HTTP: &http.Client{
			Timeout: 30 * time.Second, // per request
		},
		Retry: httpx.DefaultRetryConfig(),
	}
}

// TitleRequest describes one course to generate content titles for.
// Language is the language-course name ("chinese", "spanish", ...) or
// empty for a regular course.
type TitleRequest struct {
	LessonTitle string
	Description string
	Category    string
	Language    string
}

/* -------- wire types -------- */

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

/* -------- API -------- */

// ContentTitles asks the model for 4-5 content titles. The response is
// expected to be a JSON object with a "titles" array; a plain-text
// list is accepted as a fallback parse.
func (c *Client) ContentTitles(ctx context.Context, req TitleRequest) ([]string, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("glm: missing env GLM_API_KEY")
	}

	body := chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(req.Language)},
			{Role: "user", Content: userPrompt(req)},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	}
	headers := map[string]string{
		"Authorization": "Bearer " + c.APIKey,
	}

	url := strings.TrimRight(c.BaseURL, "/") + "/chat/completions"
	respBody, err := httpx.PostJSON(ctx, c.HTTP, url, headers, body, c.Retry)
	if err != nil {
		return nil, fmt.Errorf("glm: chat completion: %w", err)
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("glm: decode response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrNoTitles
	}

	titles := parseTitles(resp.Choices[0].Message.Content)
	if len(titles) < 4 {
		return nil, ErrNoTitles
	}
	return titles, nil
}

func systemPrompt(language string) string {
	if language != "" {
		return fmt.Sprintf("You are a course content designer specializing in %s language courses. "+
			"Based on the lesson title and description, generate 4-5 logical content titles that would be part of this %s language course. "+
			"The titles should follow a logical progression for language learning.", language, language)
	}
	return "You are a course content designer. Based on the lesson title and description, " +
		"generate 4-5 logical content titles that would be part of this course. " +
		"The titles should follow a logical progression from basic concepts to more advanced topics."
}

func userPrompt(req TitleRequest) string {
	return fmt.Sprintf("Lesson Title: %s\n\nDescription: %s\n\nCategory: %s\n\n"+
		"Generate 4-5 content titles that would logically be part of this course. "+
		"Return only the titles as a JSON array under the key \"titles\", with no additional text.",
		req.LessonTitle, req.Description, req.Category)
}

// parseTitles extracts at most 5 titles from the model output: first
// as a {"titles": [...]} JSON object, then as a bulleted or numbered
// plain-text list.
func parseTitles(content string) []string {
	var obj struct {
		Titles []string `json:"titles"`
	}
	if err := json.Unmarshal([]byte(content), &obj); err == nil && len(obj.Titles) > 0 {
		return clip(obj.Titles)
	}

	var titles []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789.) ")
		line = strings.Trim(line, `"`)
		if line != "" {
			titles = append(titles, line)
		}
	}
	return clip(titles)
}

func clip(titles []string) []string {
	out := make([]string, 0, 5)
	for _, t := range titles {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		out = append(out, t)
		if len(out) == 5 {
			break
		}
	}
	return out
}
