package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/GoFitLab/FitCoach/internal/config"
)

const defaultBaseURL = "https://api.groq.com/openai/v1" // Базовый URL Groq API

// Client представляет клиент для взаимодействия с Groq chat-completions API.
// Создается один раз на процесс и передается по ссылке (никакого глобального
// синглтона), см. di.BuildApp.
type Client struct {
	httpClient *http.Client
	apiKey     string
	model      string

	// overrideBaseURL подменяет endpoint в тестах (httptest.Server).
	overrideBaseURL string
}

// NewClient создает новый экземпляр Groq Client.
// Пустой API-ключ допустим: клиент создается, но Configured() вернет false.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     cfg.GroqAPIKey,
		model:      cfg.GroqModel,
	}
}

// Configured сообщает, задан ли API-ключ.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// CompleteJSON выполняет один chat-completions запрос с response_format
// json_object и возвращает текст ответа модели (choices[0].message.content).
// Ретраев нет: любая ошибка сразу возвращается вызывающему.
func (c *Client) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal chat completion request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.baseURL())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute groq request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("groq API вернул статус %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode groq response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("groq response contains no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// baseURL позволяет переопределить endpoint в тестах через поле override.
func (c *Client) baseURL() string {
	if c.overrideBaseURL != "" {
		return c.overrideBaseURL
	}
	return defaultBaseURL
}
