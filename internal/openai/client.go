package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strconv"

	"macrofit/internal/nutrition"
)

type Client struct {
	apiKey     string
	httpClient *http.Client
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

func NewClient() (*Client, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}, nil
}

var (
	caloriesPattern = regexp.MustCompile(`(?i)Calories?:\s*(\d+)`)
	proteinPattern  = regexp.MustCompile(`(?i)Protein:\s*(\d+)`)
	carbsPattern    = regexp.MustCompile(`(?i)Carbs?:\s*(\d+)`)
	fatPattern      = regexp.MustCompile(`(?i)Fat:\s*(\d+)`)
)

// ComputeMacroTargets asks the model for a daily calorie and macro
// breakdown in a fixed numeric format and parses the reply. Any transport
// error or unparseable response is returned as an error; callers fall back
// to the deterministic calculator.
func (c *Client) ComputeMacroTargets(ctx context.Context, m nutrition.Metrics) (nutrition.Targets, error) {
	prompt := fmt.Sprintf(`Calculate my daily macros based on my profile:
- Age: %d years
- Height: %d'%d"
- Weight: %d lbs
- Sex: %s
- Activity Level: %s
- Goal: %s

Please provide my daily calorie target and macro breakdown (protein, carbs, fat in grams). Return ONLY the numbers in this exact format:
Calories: [number]
Protein: [number]g
Carbs: [number]g
Fat: [number]g`,
		m.Age, m.FeetHeight, m.InchesHeight, m.Weight, m.Sex, m.ActivityLevel, m.PrimaryGoal)

	reply, err := c.chatCompletion(ctx, prompt)
	if err != nil {
		return nutrition.Targets{}, err
	}
	return ParseMacroResponse(reply)
}

func (c *Client) chatCompletion(ctx context.Context, prompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []ChatMessage{
			{Role: "system", Content: "You are a nutrition assistant. Answer only in the exact format the user requests."},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
		MaxTokens:   200,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.openai.com/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from completion API", resp.StatusCode)
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion API returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// ParseMacroResponse extracts the four numeric targets from a reply in the
// requested Calories/Protein/Carbs/Fat format. All four must be present.
func ParseMacroResponse(reply string) (nutrition.Targets, error) {
	values := [4]int{}
	patterns := [4]*regexp.Regexp{caloriesPattern, proteinPattern, carbsPattern, fatPattern}
	names := [4]string{"calories", "protein", "carbs", "fat"}

	for i, pattern := range patterns {
		match := pattern.FindStringSubmatch(reply)
		if match == nil {
			return nutrition.Targets{}, fmt.Errorf("could not find %s in model reply", names[i])
		}
		v, err := strconv.Atoi(match[1])
		if err != nil {
			return nutrition.Targets{}, fmt.Errorf("could not parse %s value %q: %w", names[i], match[1], err)
		}
		values[i] = v
	}

	return nutrition.Targets{
		Calories: values[0],
		Protein:  values[1],
		Carbs:    values[2],
		Fat:      values[3],
	}, nil
}
