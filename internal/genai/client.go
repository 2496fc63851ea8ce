// Package genai adapts an OpenAI-compatible chat-completions endpoint
// (hosted gateway, Ollama, vLLM, ...) into the exam.Generator collaborator.
// It owns prompt construction and response cleanup; the domain packages
// never see raw model output.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/studyaide/studyaide-backend/internal/exam"
)

type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	log     *zap.Logger
}

var _ exam.Generator = (*Client)(nil)

func NewClient(baseURL, apiKey, model string, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		http:    &http.Client{Timeout: 120 * time.Second},
		log:     log,
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate asks the model for a question batch and decodes it. The model
// occasionally wraps output in markdown fences despite instructions, so the
// response goes through ParseBatch rather than straight into json.Unmarshal.
func (c *Client) Generate(ctx context.Context, req exam.GenerateRequest) ([]exam.RawQuestion, error) {
	prompt := buildExamPrompt(req)

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return nil, fmt.Errorf("model returned no content")
	}

	batch, err := ParseBatch(cr.Choices[0].Message.Content)
	if err != nil {
		c.log.Warn("model produced undecodable batch", zap.Error(err))
		return nil, err
	}
	return batch, nil
}

func buildExamPrompt(req exam.GenerateRequest) string {
	topic := req.Topic
	if topic == "" {
		topic = "General"
	}
	return fmt.Sprintf(`You are an expert university professor setting an exam.
Course: %s
Topic: %s

Generate %d examination-standard multiple-choice questions.
Vary difficulty from basic facts to complex problem-solving. Use four
distinct options where only one is correct, with distractors that represent
common student mistakes. Use formal, clear language.

OUTPUT FORMAT:
Return ONLY a raw JSON list of dictionaries. Do NOT use Markdown code blocks.
Each dictionary must have these keys:
- "question": The question text
- "options": A list of strings (e.g., ["Option A", "Option B", "Option C", "Option D"] or ["True", "False"])
- "answer": The exact string of the correct option
- "explanation": A short explanation of why it is correct`,
		req.Course, topic, req.NumQuestions)
}
