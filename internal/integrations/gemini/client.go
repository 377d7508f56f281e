package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTemperature     = 0.3
	defaultMaxOutputTokens = 1024
	maxErrorBodyBytes      = 4 << 10
)

// Client клиент Gemini generateContent
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Gemini
func NewClient(baseURL, model, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AnswerQuestion отвечает на вопрос пользователя, опираясь только на переданные документы
func (c *Client) AnswerQuestion(ctx context.Context, query string, contextDocuments []string) (string, error) {
	body, err := json.Marshal(GenerateContentRequest{
		SystemInstruction: &Content{Parts: []Part{{Text: BuildSystemInstruction(contextDocuments)}}},
		Contents:          []Content{{Role: "user", Parts: []Part{{Text: query}}}},
		GenerationConfig: GenerationConfig{
			Temperature:     defaultTemperature,
			MaxOutputTokens: defaultMaxOutputTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.log.Info("Gemini: model=%s status=%d in %s", c.model, resp.StatusCode, time.Since(start))

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: %s", ErrRateLimited, readError(resp.Body))
	default:
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readError(resp.Body))
	}

	// Парсим ответ
	var result GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(result.Candidates) == 0 {
		return "", ErrEmptyAnswer
	}

	var answer strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		answer.WriteString(p.Text)
	}

	text := strings.TrimSpace(answer.String())
	if text == "" {
		return "", fmt.Errorf("%w: finish reason %s", ErrEmptyAnswer, result.Candidates[0].FinishReason)
	}

	return text, nil
}

// readError достает сообщение об ошибке из тела ответа
func readError(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))

	var e ErrorResponse
	if err := json.Unmarshal(raw, &e); err == nil && e.Error.Message != "" {
		return e.Error.Message
	}
	return string(raw)
}
