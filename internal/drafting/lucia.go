package drafting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// systemPrompt pins LucIA's drafting persona. The rules mirror the firm's
// style guide for asamblea minutes: formal Colombian legal Spanish, numbers
// spelled out with the figure in parentheses, votes expressed in shares.
const systemPrompt = `Eres LucIA, la asistente jurídica de inteligencia artificial de Due Legal, un despacho de abogados colombiano especializado en derecho societario. Tu función es redactar puntos de actas de asamblea de accionistas de sociedades S.A.S. colombianas.

REGLAS DE REDACCIÓN:
1. Escribe en español jurídico colombiano formal, en tercera persona, con lenguaje propio de actas de asamblea.
2. Siempre incluye las citas normativas relevantes (Ley 1258 de 2008, Código de Comercio, Ley 222 de 1995, etc.).
3. Los números siempre van en letras seguidos del número entre paréntesis: "treinta y cinco (35) acciones".
4. Incluye la estructura de votación: "La propuesta fue sometida a votación y aprobada con el voto favorable de [X] acciones suscritas y pagadas, [Y] votos en contra, y [Z] votos en blanco."
5. Usa conectores jurídicos formales: "Acto seguido", "Seguidamente", "A renglón seguido", "En uso de la palabra", etc.
6. Redacta de forma completa pero concisa — párrafos de 3-5 líneas máximo.
7. NO incluyas títulos, encabezados ni numeración — solo el texto del punto.
8. Responde ÚNICAMENTE con el texto redactado, sin explicaciones ni comentarios adicionales.
9. Los votos deben expresarse en número de acciones suscritas y pagadas, NO en número de personas.`

// LucIAClient calls the Anthropic Messages API to draft agenda items.
type LucIAClient struct {
	apiKey     string
	model      string
	httpClient *http.Client
	stats      *Stats
}

func NewLucIAClient(apiKey, model string, stats *Stats) *LucIAClient {
	return &LucIAClient{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		stats: stats,
	}
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Draft asks LucIA for the final text of one agenda item. The prompt
// carries the lawyer's summary and the context carries the meeting facts;
// both are built by BuildPrompt/BuildContext.
func (c *LucIAClient) Draft(ctx context.Context, prompt, meetingContext string) (string, error) {
	reqBody := anthropicRequest{
		Model:     c.model,
		MaxTokens: 1500,
		System:    systemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt + "\n\n" + meetingContext},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.anthropic.com/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("lucia api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if c.stats != nil {
		c.stats.Record(time.Since(start).Milliseconds())
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lucia api status %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp anthropicResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Error != nil {
		return "", fmt.Errorf("lucia error: %s: %s", apiResp.Error.Type, apiResp.Error.Message)
	}

	var sb strings.Builder
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("empty response from lucia")
	}

	return Normalize(text), nil
}

// RetryableError indicates a transient failure that can be retried.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Close releases resources.
func (c *LucIAClient) Close() {
	c.httpClient.CloseIdleConnections()
}
